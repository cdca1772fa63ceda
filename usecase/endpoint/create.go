package endpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/kompox/kubeconfigure/domain/model"
	"github.com/kompox/kubeconfigure/internal/naming"
)

// CreateInput contains data to register an endpoint.
type CreateInput struct {
	// Name is the endpoint display name.
	Name string `json:"name"`
	// URL is the API server address shown to users.
	URL string `json:"url,omitempty"`
	// Kubeconfig is the kubeconfig path used to reach the cluster.
	Kubeconfig string `json:"kubeconfig,omitempty"`
	// Configuration optionally seeds the persisted configuration.
	Configuration *model.EndpointConfiguration `json:"configuration,omitempty"`
}

// CreateOutput wraps the created endpoint.
type CreateOutput struct {
	// Endpoint is the newly created entity.
	Endpoint *model.Endpoint `json:"endpoint"`
}

// Create persists a new endpoint.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil {
		return nil, model.ErrEndpointInvalid
	}
	if err := naming.ValidateEndpointName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrEndpointInvalid, err)
	}
	now := time.Now().UTC()
	e := &model.Endpoint{Name: in.Name, URL: in.URL, Kubeconfig: in.Kubeconfig, CreatedAt: now, UpdatedAt: now}
	if in.Configuration != nil {
		e.Kubernetes.Configuration = in.Configuration.Clone()
	}
	if err := u.Repos.Endpoint.Create(ctx, e); err != nil {
		return nil, err
	}
	u.refreshCache(ctx)
	return &CreateOutput{Endpoint: e}, nil
}
