package endpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/kompox/kubeconfigure/domain/model"
	"github.com/kompox/kubeconfigure/internal/naming"
)

// UpdateInput specifies endpoint fields that can be changed.
// The Kubernetes configuration is only changed through the configure use case.
type UpdateInput struct {
	// EndpointID identifies the endpoint.
	EndpointID string `json:"endpoint_id"`
	// Name optionally updates the name.
	Name *string `json:"name,omitempty"`
	// URL optionally updates the URL.
	URL *string `json:"url,omitempty"`
	// Kubeconfig optionally updates the kubeconfig path.
	Kubeconfig *string `json:"kubeconfig,omitempty"`
}

// UpdateOutput wraps the updated endpoint.
type UpdateOutput struct {
	// Endpoint is the updated entity.
	Endpoint *model.Endpoint `json:"endpoint"`
}

// Update applies provided changes to an endpoint.
func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.EndpointID == "" {
		return nil, model.ErrEndpointInvalid
	}
	existing, err := u.Repos.Endpoint.Get(ctx, in.EndpointID)
	if err != nil {
		return nil, err
	}
	changed := false
	if in.Name != nil && *in.Name != "" && existing.Name != *in.Name {
		if err := naming.ValidateEndpointName(*in.Name); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrEndpointInvalid, err)
		}
		existing.Name = *in.Name
		changed = true
	}
	if in.URL != nil && existing.URL != *in.URL {
		existing.URL = *in.URL
		changed = true
	}
	if in.Kubeconfig != nil && existing.Kubeconfig != *in.Kubeconfig {
		existing.Kubeconfig = *in.Kubeconfig
		changed = true
	}
	if changed {
		existing.UpdatedAt = time.Now().UTC()
		if err := u.Repos.Endpoint.Update(ctx, existing); err != nil {
			return nil, err
		}
		u.refreshCache(ctx)
	}
	return &UpdateOutput{Endpoint: existing}, nil
}
