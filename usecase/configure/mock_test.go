package configure

import (
	"context"
	"errors"
	"sync"

	"github.com/kompox/kubeconfigure/domain/model"
)

// mockEndpointRepo is a mock implementation for testing.
type mockEndpointRepo struct {
	getFunc    func(ctx context.Context, id string) (*model.Endpoint, error)
	updateFunc func(ctx context.Context, e *model.Endpoint) error
}

func (m *mockEndpointRepo) Create(ctx context.Context, e *model.Endpoint) error {
	return errors.New("not implemented")
}

func (m *mockEndpointRepo) Get(ctx context.Context, id string) (*model.Endpoint, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockEndpointRepo) List(ctx context.Context) ([]*model.Endpoint, error) {
	return nil, errors.New("not implemented")
}

func (m *mockEndpointRepo) Update(ctx context.Context, e *model.Endpoint) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, e)
	}
	return errors.New("not implemented")
}

func (m *mockEndpointRepo) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

// mockCache is a mock implementation for testing.
type mockCache struct {
	endpoints []*model.Endpoint
	sets      int
}

func (m *mockCache) Endpoints() []*model.Endpoint { return m.endpoints }

func (m *mockCache) SetEndpoints(endpoints []*model.Endpoint) {
	m.endpoints = endpoints
	m.sets++
}

// mockStoragePort is a mock implementation for testing.
type mockStoragePort struct {
	listFunc  func(ctx context.Context, endpointID string) ([]model.StorageClass, error)
	patchFunc func(ctx context.Context, endpointID string, prev, next model.StorageClass) error
}

func (m *mockStoragePort) StorageClassList(ctx context.Context, endpointID string) ([]model.StorageClass, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, endpointID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStoragePort) StorageClassPatch(ctx context.Context, endpointID string, prev, next model.StorageClass) error {
	if m.patchFunc != nil {
		return m.patchFunc(ctx, endpointID, prev, next)
	}
	return errors.New("not implemented")
}

// mockIngressPort is a mock implementation for testing.
type mockIngressPort struct {
	deleteFunc func(ctx context.Context, endpointID, namespace string, class model.IngressClass) error

	mu    sync.Mutex
	calls []string
}

func (m *mockIngressPort) IngressDelete(ctx context.Context, endpointID, namespace string, class model.IngressClass) error {
	m.mu.Lock()
	m.calls = append(m.calls, namespace+"/"+class.Name)
	m.mu.Unlock()
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, endpointID, namespace, class)
	}
	return nil
}

// mockResourcePoolPort is a mock implementation for testing.
type mockResourcePoolPort struct {
	listFunc func(ctx context.Context, endpointID string) ([]model.ResourcePool, error)
}

func (m *mockResourcePoolPort) ResourcePoolList(ctx context.Context, endpointID string) ([]model.ResourcePool, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, endpointID)
	}
	return nil, errors.New("not implemented")
}

// mockNotifier records notifications.
type mockNotifier struct {
	successes []string
	errors    []string
}

func (m *mockNotifier) Success(ctx context.Context, title, msg string) {
	m.successes = append(m.successes, msg)
}

func (m *mockNotifier) Error(ctx context.Context, title string, err error, msg string) {
	m.errors = append(m.errors, msg)
}

// mockConfirmer answers confirmation prompts.
type mockConfirmer struct {
	answer bool
	err    error
	asked  int
}

func (m *mockConfirmer) Confirm(ctx context.Context, msg string) (bool, error) {
	m.asked++
	return m.answer, m.err
}

func pools(names ...string) []model.ResourcePool {
	out := make([]model.ResourcePool, 0, len(names))
	for _, n := range names {
		out = append(out, model.ResourcePool{Namespace: model.ResourcePoolNamespace{Name: n}})
	}
	return out
}
