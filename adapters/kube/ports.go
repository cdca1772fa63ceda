package kube

import (
	"context"
	"fmt"
	"sync"

	"github.com/kompox/kubeconfigure/domain"
	"github.com/kompox/kubeconfigure/domain/model"
	"github.com/kompox/kubeconfigure/internal/logging"
)

// ClientFactory builds a Client for an endpoint.
type ClientFactory func(ctx context.Context, endpoint *model.Endpoint) (*Client, error)

// EndpointPorts implements the storage, ingress and resource pool ports on top
// of per-endpoint clients. Clients are created on first use and reused.
type EndpointPorts struct {
	Endpoints domain.EndpointRepository
	// NewClient overrides client construction. Defaults to DefaultClientFactory.
	NewClient ClientFactory

	mu      sync.Mutex
	clients map[string]*Client
}

// NewEndpointPorts returns ports resolving clients through the endpoint
// repository. Endpoints without a kubeconfig path use defaultKubeconfig.
func NewEndpointPorts(endpoints domain.EndpointRepository, defaultKubeconfig string, opts Options) *EndpointPorts {
	return &EndpointPorts{Endpoints: endpoints, NewClient: DefaultClientFactory(defaultKubeconfig, opts)}
}

// DefaultClientFactory connects with NewClientForEndpoint.
func DefaultClientFactory(defaultKubeconfig string, opts Options) ClientFactory {
	return func(_ context.Context, endpoint *model.Endpoint) (*Client, error) {
		return NewClientForEndpoint(endpoint, defaultKubeconfig, opts)
	}
}

func (p *EndpointPorts) client(ctx context.Context, endpointID string) (*Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.clients[endpointID]; ok {
		return c, nil
	}
	endpoint, err := p.Endpoints.Get(ctx, endpointID)
	if err != nil {
		return nil, fmt.Errorf("get endpoint %s: %w", endpointID, err)
	}
	newClient := p.NewClient
	if newClient == nil {
		newClient = DefaultClientFactory("", Options{})
	}
	c, err := newClient(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("kube client for endpoint %s: %w", endpointID, err)
	}
	if p.clients == nil {
		p.clients = make(map[string]*Client)
	}
	p.clients[endpointID] = c
	var host string
	if c.RESTConfig != nil {
		host = c.RESTConfig.Host
	}
	logging.FromContext(ctx).Debug(ctx, "kube client created", "endpointId", endpointID, "host", host)
	return c, nil
}


func (p *EndpointPorts) StorageClassList(ctx context.Context, endpointID string) ([]model.StorageClass, error) {
	c, err := p.client(ctx, endpointID)
	if err != nil {
		return nil, err
	}
	return c.StorageClassList(ctx)
}

func (p *EndpointPorts) StorageClassPatch(ctx context.Context, endpointID string, prev, next model.StorageClass) error {
	c, err := p.client(ctx, endpointID)
	if err != nil {
		return err
	}
	return c.StorageClassPatch(ctx, prev, next)
}

func (p *EndpointPorts) IngressDelete(ctx context.Context, endpointID, namespace string, class model.IngressClass) error {
	c, err := p.client(ctx, endpointID)
	if err != nil {
		return err
	}
	return c.DeleteIngress(ctx, namespace, class)
}

func (p *EndpointPorts) ResourcePoolList(ctx context.Context, endpointID string) ([]model.ResourcePool, error) {
	c, err := p.client(ctx, endpointID)
	if err != nil {
		return nil, err
	}
	return c.ResourcePoolList(ctx)
}

var (
	_ model.StoragePort      = (*EndpointPorts)(nil)
	_ model.IngressPort      = (*EndpointPorts)(nil)
	_ model.ResourcePoolPort = (*EndpointPorts)(nil)
)
