package inmem

import (
	"sync"

	"github.com/kompox/kubeconfigure/domain"
	"github.com/kompox/kubeconfigure/domain/model"
)

// EndpointCache keeps the endpoint list shown between reloads.
type EndpointCache struct {
	mu        sync.RWMutex
	endpoints []*model.Endpoint
}

func NewEndpointCache() *EndpointCache { return &EndpointCache{} }

// Endpoints returns copies of the cached endpoints.
func (c *EndpointCache) Endpoints() []*model.Endpoint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*model.Endpoint, 0, len(c.endpoints))
	for _, e := range c.endpoints {
		out = append(out, copyEndpoint(e))
	}
	return out
}

// SetEndpoints replaces the cached list.
func (c *EndpointCache) SetEndpoints(endpoints []*model.Endpoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.endpoints = make([]*model.Endpoint, 0, len(endpoints))
	for _, e := range endpoints {
		c.endpoints = append(c.endpoints, copyEndpoint(e))
	}
}

var _ domain.EndpointCache = (*EndpointCache)(nil)
