package endpoint

import (
	"context"

	"github.com/kompox/kubeconfigure/domain"
	"github.com/kompox/kubeconfigure/internal/logging"
)

// Repos holds repositories needed for endpoint use cases.
type Repos struct {
	Endpoint domain.EndpointRepository
	// Cache is refreshed after every change when set.
	Cache domain.EndpointCache
}

// UseCase wires repositories needed for endpoint use cases.
type UseCase struct {
	Repos *Repos
}

func (u *UseCase) refreshCache(ctx context.Context) {
	if u.Repos.Cache == nil {
		return
	}
	items, err := u.Repos.Endpoint.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn(ctx, "endpoint cache not refreshed", "err", err)
		return
	}
	u.Repos.Cache.SetEndpoints(items)
}
