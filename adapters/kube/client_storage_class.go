package kube

import (
	"context"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	storagev1 "k8s.io/api/storage/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/kompox/kubeconfigure/domain/model"
)

// StorageClassList returns the cluster storage classes. Access modes are left
// empty; they are an endpoint setting, not a cluster property.
func (c *Client) StorageClassList(ctx context.Context) ([]model.StorageClass, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	list, err := c.Clientset.StorageV1().StorageClasses().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list storage classes: %w", err)
	}
	out := make([]model.StorageClass, 0, len(list.Items))
	for _, sc := range list.Items {
		out = append(out, storageClassToModel(&sc))
	}
	return out, nil
}

func storageClassToModel(sc *storagev1.StorageClass) model.StorageClass {
	m := model.StorageClass{Name: sc.Name, Provisioner: sc.Provisioner}
	if sc.AllowVolumeExpansion != nil {
		m.AllowVolumeExpansion = *sc.AllowVolumeExpansion
	}
	return m
}

// storageClassPatchView holds the StorageClass fields an endpoint edit may change.
type storageClassPatchView struct {
	Metadata             patchMetadata `json:"metadata"`
	Provisioner          string        `json:"provisioner"`
	AllowVolumeExpansion bool          `json:"allowVolumeExpansion"`
}

type patchMetadata struct {
	Name string `json:"name"`
}

func storageClassPatchDoc(sc model.StorageClass) ([]byte, error) {
	return json.Marshal(storageClassPatchView{
		Metadata:             patchMetadata{Name: sc.Name},
		Provisioner:          sc.Provisioner,
		AllowVolumeExpansion: sc.AllowVolumeExpansion,
	})
}

// StorageClassMergePatch computes the JSON merge patch from prev to next.
// It returns nil when nothing changed.
func StorageClassMergePatch(prev, next model.StorageClass) ([]byte, error) {
	a, err := storageClassPatchDoc(prev)
	if err != nil {
		return nil, err
	}
	b, err := storageClassPatchDoc(next)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("create merge patch: %w", err)
	}
	if string(patch) == "{}" {
		return nil, nil
	}
	return patch, nil
}

// StorageClassPatch applies the difference between prev and next to the
// named storage class. Unchanged classes are not sent to the API server.
func (c *Client) StorageClassPatch(ctx context.Context, prev, next model.StorageClass) error {
	if err := c.ready(); err != nil {
		return err
	}
	patch, err := StorageClassMergePatch(prev, next)
	if err != nil {
		return err
	}
	if patch == nil {
		return nil
	}
	_, err = c.Clientset.StorageV1().StorageClasses().Patch(ctx, prev.Name, types.MergePatchType, patch, metav1.PatchOptions{})
	if err != nil {
		return fmt.Errorf("patch storage class %s: %w", prev.Name, err)
	}
	return nil
}
