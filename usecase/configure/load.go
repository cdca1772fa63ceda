package configure

import (
	"context"
	"fmt"

	"github.com/kompox/kubeconfigure/domain/model"
	"github.com/kompox/kubeconfigure/internal/logging"
	"golang.org/x/sync/errgroup"
)

// LoadInput identifies the endpoint whose configuration form is loaded.
type LoadInput struct {
	// EndpointID is the endpoint identifier.
	EndpointID string `json:"endpoint_id"`
}

// LoadOutput wraps the loaded form.
type LoadOutput struct {
	// Form is always set, even when Load returns an error; it is then empty but ViewReady.
	Form *Form `json:"form"`
}

// Load fetches cluster storage classes and the persisted endpoint configuration
// concurrently and merges them into a form.
func (u *UseCase) Load(ctx context.Context, in *LoadInput) (out *LoadOutput, err error) {
	if in == nil || in.EndpointID == "" {
		return nil, model.ErrEndpointInvalid
	}
	ctx, end := logging.Span(ctx, "UC", "configure.load", "endpointId", in.EndpointID)

	form := NewForm(in.EndpointID)
	out = &LoadOutput{Form: form}
	defer func() {
		form.ViewReady = true
		end(err)
		if err != nil {
			u.notifyError(ctx, err, "Unable to retrieve endpoint configuration")
		}
	}()

	var (
		classes  []model.StorageClass
		endpoint *model.Endpoint
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := u.StoragePort.StorageClassList(gctx, in.EndpointID)
		if err != nil {
			return fmt.Errorf("list storage classes: %w", err)
		}
		classes = items
		return nil
	})
	g.Go(func() error {
		e, err := u.Repos.Endpoint.Get(gctx, in.EndpointID)
		if err != nil {
			return fmt.Errorf("get endpoint %s: %w", in.EndpointID, err)
		}
		endpoint = e
		return nil
	})
	if err := g.Wait(); err != nil {
		return out, err
	}

	cfg := endpoint.Kubernetes.Configuration
	form.Endpoint = endpoint
	form.StorageClasses = make([]*StorageClassOption, 0, len(classes))
	for _, sc := range classes {
		form.StorageClasses = append(form.StorageClasses, mergeStorageClass(sc, &cfg))
	}
	form.snapshot()

	form.UseLoadBalancer = cfg.UseLoadBalancer
	form.UseServerMetrics = cfg.UseServerMetrics
	form.IngressClasses = make([]*IngressClassEntry, 0, len(cfg.IngressClasses))
	for _, ic := range cfg.IngressClasses {
		form.IngressClasses = append(form.IngressClasses, &IngressClassEntry{IngressClass: ic})
	}
	form.refreshDuplicates()

	logging.FromContext(ctx).Debug(ctx, "configuration form loaded", "storageClasses", len(form.StorageClasses), "ingressClasses", len(form.IngressClasses))
	return out, nil
}

// mergeStorageClass builds the form option for a fetched storage class. When the
// class is part of the persisted configuration it is selected and its access
// modes mirror the persisted ones; otherwise the default policies apply.
func mergeStorageClass(sc model.StorageClass, cfg *model.EndpointConfiguration) *StorageClassOption {
	opt := &StorageClassOption{
		Name:                 sc.Name,
		Provisioner:          sc.Provisioner,
		AllowVolumeExpansion: sc.AllowVolumeExpansion,
		AccessModes:          model.DefaultAccessModeOptions(),
	}
	persisted, ok := cfg.StorageClassByName(sc.Name)
	if !ok {
		return opt
	}
	opt.Selected = true
	modes := make(map[string]bool, len(persisted.AccessModes))
	for _, m := range persisted.AccessModes {
		modes[m] = true
	}
	for i := range opt.AccessModes {
		opt.AccessModes[i].Selected = modes[opt.AccessModes[i].Name]
	}
	return opt
}
