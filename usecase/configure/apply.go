package configure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kompox/kubeconfigure/domain/model"
	"github.com/kompox/kubeconfigure/internal/logging"
	"golang.org/x/sync/errgroup"
)

// DeletionWarning is shown before ingress controllers are removed.
const DeletionWarning = "Removing ingress controllers may cause applications to be unaccessible. " +
	"All ingress configurations from affected applications will be removed.\n\nDo you wish to continue?"

// ConfigureInput carries the form to save.
type ConfigureInput struct {
	// Form is a form previously returned by Load.
	Form *Form
}

// ConfigureOutput reports the result of a save.
type ConfigureOutput struct {
	// Applied is false when the user declined the deletion warning.
	Applied bool `json:"applied"`
	// Endpoint is the endpoint as persisted.
	Endpoint *model.Endpoint `json:"endpoint,omitempty"`
	// DeletedIngresses counts ingress objects removed across namespaces.
	DeletedIngresses int `json:"deletedIngresses"`
}

// Configure validates and saves the form. When ingress classes are flagged for
// deletion the user is asked to confirm first, because every ingress of those
// classes is removed from all user namespaces. Every failure is notified.
func (u *UseCase) Configure(ctx context.Context, in *ConfigureInput) (out *ConfigureOutput, err error) {
	if in == nil || in.Form == nil {
		return nil, fmt.Errorf("%w: form is required", model.ErrConfigurationInvalid)
	}
	form := in.Form
	defer func() {
		if err != nil {
			u.notifyError(ctx, err, "Unable to apply configuration")
		}
	}()
	if form.Endpoint == nil {
		return nil, fmt.Errorf("%w: form for %q is not loaded", model.ErrEndpointInvalid, form.EndpointID)
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if len(form.PendingDeletions()) > 0 {
		if u.Confirmer == nil {
			return nil, errors.New("confirmation required to remove ingress classes")
		}
		ok, err := u.Confirmer.Confirm(ctx, DeletionWarning)
		if err != nil {
			return nil, fmt.Errorf("confirm ingress class removal: %w", err)
		}
		if !ok {
			logging.FromContext(ctx).Info(ctx, "configuration not applied, removal declined", "endpointId", form.EndpointID)
			return &ConfigureOutput{Applied: false}, nil
		}
	}
	return u.apply(ctx, form)
}

func (u *UseCase) apply(ctx context.Context, form *Form) (out *ConfigureOutput, err error) {
	if !form.actionInProgress.CompareAndSwap(false, true) {
		return nil, model.ErrActionInProgress
	}
	defer form.actionInProgress.Store(false)

	ctx, end := logging.Span(ctx, "UC", "configure.apply", "endpointId", form.EndpointID)
	defer func() { end(err) }()

	storageClasses, ingressClasses := form.transform()

	deleted, err := u.removeIngressesAcrossNamespaces(ctx, form)
	if err != nil {
		return nil, err
	}

	endpoint := form.Endpoint
	assignConfiguration(endpoint, form, storageClasses, ingressClasses)
	endpoint.UpdatedAt = time.Now().UTC()
	if err := u.Repos.Endpoint.Update(ctx, endpoint); err != nil {
		return nil, fmt.Errorf("update endpoint %s: %w", endpoint.ID, err)
	}

	if err := u.patchStorageClasses(ctx, form, storageClasses); err != nil {
		return nil, err
	}

	u.syncCache(endpoint, form, storageClasses, ingressClasses)
	form.commit()

	u.notifySuccess(ctx, "Configuration successfully applied")
	return &ConfigureOutput{Applied: true, Endpoint: endpoint, DeletedIngresses: deleted}, nil
}

func assignConfiguration(endpoint *model.Endpoint, form *Form, storageClasses []model.StorageClass, ingressClasses []model.IngressClass) {
	cfg := model.EndpointConfiguration{
		UseLoadBalancer:  form.UseLoadBalancer,
		UseServerMetrics: form.UseServerMetrics,
		StorageClasses:   storageClasses,
		IngressClasses:   ingressClasses,
	}
	endpoint.Kubernetes.Configuration = cfg.Clone()
}

// patchStorageClasses pushes edited settings of the selected storage classes
// back to the cluster. Classes unknown at load time are skipped.
func (u *UseCase) patchStorageClasses(ctx context.Context, form *Form, storageClasses []model.StorageClass) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency())
	for _, next := range storageClasses {
		prev, ok := form.loadedStorageClass(next.Name)
		if !ok {
			continue
		}
		g.Go(func() error {
			if err := u.StoragePort.StorageClassPatch(gctx, form.EndpointID, prev, next); err != nil {
				return fmt.Errorf("patch storage class %s: %w", next.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// syncCache keeps the cached endpoint list consistent with what was persisted.
func (u *UseCase) syncCache(endpoint *model.Endpoint, form *Form, storageClasses []model.StorageClass, ingressClasses []model.IngressClass) {
	if u.Repos.Cache == nil {
		return
	}
	endpoints := u.Repos.Cache.Endpoints()
	for _, e := range endpoints {
		if e.ID == endpoint.ID {
			assignConfiguration(e, form, storageClasses, ingressClasses)
			u.Repos.Cache.SetEndpoints(endpoints)
			return
		}
	}
}
