package endpoint

import (
	"context"

	"github.com/kompox/kubeconfigure/domain/model"
)

// GetInput identifies the endpoint to fetch.
type GetInput struct {
	// EndpointID is the identifier of the endpoint.
	EndpointID string `json:"endpoint_id"`
}

// GetOutput wraps the retrieved endpoint.
type GetOutput struct {
	// Endpoint is the fetched entity.
	Endpoint *model.Endpoint `json:"endpoint"`
}

// Get retrieves an endpoint by ID.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.EndpointID == "" {
		return nil, model.ErrEndpointInvalid
	}
	e, err := u.Repos.Endpoint.Get(ctx, in.EndpointID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Endpoint: e}, nil
}
