package kube

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/kompox/kubeconfigure/domain/model"
)

// IngressName returns the name of the Ingress object that serves an ingress
// class within a namespace. One Ingress per class and namespace is managed.
func IngressName(class model.IngressClass) string {
	return class.Name
}

// DeleteIngress deletes the Ingress of the given class in namespace.
// A missing Ingress yields an error wrapping model.ErrIngressNotFound.
func (c *Client) DeleteIngress(ctx context.Context, namespace string, class model.IngressClass) error {
	if err := c.ready(); err != nil {
		return err
	}
	if namespace == "" {
		return fmt.Errorf("namespace is empty")
	}
	name := IngressName(class)
	if name == "" {
		return fmt.Errorf("ingress class name is empty")
	}
	err := c.Clientset.NetworkingV1().Ingresses(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return fmt.Errorf("%w: %s/%s", model.ErrIngressNotFound, namespace, name)
		}
		return fmt.Errorf("delete ingress %s/%s: %w", namespace, name, err)
	}
	return nil
}
