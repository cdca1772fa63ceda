package configure

import (
	"github.com/kompox/kubeconfigure/domain"
	"github.com/kompox/kubeconfigure/domain/model"
)

// DefaultConcurrency bounds parallel cluster calls issued while saving.
const DefaultConcurrency = 8

// Repos holds repositories needed for configure use cases.
type Repos struct {
	Endpoint domain.EndpointRepository
	// Cache is optional; when set, its entry for the endpoint is updated after save.
	Cache domain.EndpointCache
}

// UseCase wires repositories and ports needed for the endpoint configuration form.
type UseCase struct {
	Repos            *Repos
	StoragePort      model.StoragePort
	IngressPort      model.IngressPort
	ResourcePoolPort model.ResourcePoolPort
	Notifier         model.Notifier
	Confirmer        model.Confirmer
	// Concurrency bounds parallel ingress deletions and storage class patches.
	Concurrency int
}

func (u *UseCase) concurrency() int {
	if u.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return u.Concurrency
}
