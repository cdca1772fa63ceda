package inmem

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/kompox/kubeconfigure/domain"
	"github.com/kompox/kubeconfigure/domain/model"
	"github.com/kompox/kubeconfigure/internal/naming"
)

// EndpointRepository is a thread-safe in-memory implementation.
type EndpointRepository struct {
	mu        sync.RWMutex
	endpoints map[string]*model.Endpoint
}

func NewEndpointRepository() *EndpointRepository {
	return &EndpointRepository{endpoints: make(map[string]*model.Endpoint)}
}

func copyEndpoint(e *model.Endpoint) *model.Endpoint {
	cp := *e
	cp.Kubernetes.Configuration = e.Kubernetes.Configuration.Clone()
	return &cp
}

func (r *EndpointRepository) Create(_ context.Context, e *model.Endpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		id, err := naming.NewPrefixedID("ep")
		if err != nil {
			return fmt.Errorf("generate endpoint id: %w", err)
		}
		e.ID = id
	}
	if _, exists := r.endpoints[e.ID]; exists {
		return fmt.Errorf("%w: duplicate id %s", model.ErrEndpointInvalid, e.ID)
	}
	r.endpoints[e.ID] = copyEndpoint(e)
	return nil
}

func (r *EndpointRepository) Get(_ context.Context, id string) (*model.Endpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.endpoints[id]
	if !ok {
		return nil, model.ErrEndpointNotFound
	}
	return copyEndpoint(v), nil
}

// List returns endpoints ordered by creation time, then ID.
func (r *EndpointRepository) List(_ context.Context) ([]*model.Endpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Endpoint, 0, len(r.endpoints))
	for _, v := range r.endpoints {
		out = append(out, copyEndpoint(v))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *EndpointRepository) Update(_ context.Context, e *model.Endpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.endpoints[e.ID]; !ok {
		return model.ErrEndpointNotFound
	}
	r.endpoints[e.ID] = copyEndpoint(e)
	return nil
}

func (r *EndpointRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.endpoints[id]; !ok {
		return model.ErrEndpointNotFound
	}
	delete(r.endpoints, id)
	return nil
}

var _ domain.EndpointRepository = (*EndpointRepository)(nil)
