package endpoint

import (
	"context"

	"github.com/kompox/kubeconfigure/domain/model"
)

// ListInput defines optional filters for listing endpoints.
type ListInput struct{}

// ListOutput wraps listed endpoints.
type ListOutput struct {
	// Endpoints is the collection returned.
	Endpoints []*model.Endpoint `json:"endpoints"`
}

// List returns all endpoints. It serves the endpoint cache when one is set
// and holds entries, and primes it from the repository otherwise.
func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	cache := u.Repos.Cache
	if cache != nil {
		if items := cache.Endpoints(); len(items) > 0 {
			return &ListOutput{Endpoints: items}, nil
		}
	}
	items, err := u.Repos.Endpoint.List(ctx)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		cache.SetEndpoints(items)
	}
	return &ListOutput{Endpoints: items}, nil
}
