package domain

import (
	"context"

	"github.com/kompox/kubeconfigure/domain/model"
)

// EndpointRepository stores and retrieves Endpoint aggregates.
type EndpointRepository interface {
	Create(ctx context.Context, e *model.Endpoint) error
	Get(ctx context.Context, id string) (*model.Endpoint, error)
	List(ctx context.Context) ([]*model.Endpoint, error)
	Update(ctx context.Context, e *model.Endpoint) error
	Delete(ctx context.Context, id string) error
}

// EndpointCache holds the endpoint list shown by the console between reloads.
// Entries must be kept consistent with persisted state after updates.
type EndpointCache interface {
	Endpoints() []*model.Endpoint
	SetEndpoints(endpoints []*model.Endpoint)
}
