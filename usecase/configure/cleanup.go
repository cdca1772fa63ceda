package configure

import (
	"context"
	"errors"
	"fmt"

	"github.com/kompox/kubeconfigure/domain/model"
	"github.com/kompox/kubeconfigure/internal/logging"
	"golang.org/x/sync/errgroup"
)

type ingressDeletion struct {
	namespace string
	class     model.IngressClass
}

// removeIngressesAcrossNamespaces deletes the ingress of every class flagged for
// deletion in every user namespace. All deletions are awaited before results are
// inspected: missing ingresses count as removed, any other failure is returned.
func (u *UseCase) removeIngressesAcrossNamespaces(ctx context.Context, form *Form) (int, error) {
	pending := form.PendingDeletions()
	if len(pending) == 0 {
		return 0, nil
	}
	logger := logging.FromContext(ctx)

	pools, err := u.ResourcePoolPort.ResourcePoolList(ctx, form.EndpointID)
	if err != nil {
		return 0, fmt.Errorf("list resource pools: %w", err)
	}

	var tasks []ingressDeletion
	for _, ic := range pending {
		for _, pool := range pools {
			if !pool.IsUserPool() {
				continue
			}
			tasks = append(tasks, ingressDeletion{namespace: pool.Namespace.Name, class: ic.IngressClass})
		}
	}

	results := make([]error, len(tasks))
	var g errgroup.Group
	g.SetLimit(u.concurrency())
	for i, t := range tasks {
		g.Go(func() error {
			results[i] = u.IngressPort.IngressDelete(ctx, form.EndpointID, t.namespace, t.class)
			return nil
		})
	}
	_ = g.Wait()

	var (
		deleted int
		errs    []error
	)
	for i, err := range results {
		t := tasks[i]
		switch {
		case err == nil:
			deleted++
		case errors.Is(err, model.ErrIngressNotFound):
			logger.Debug(ctx, "ingress already absent", "namespace", t.namespace, "ingressClass", t.class.Name)
		default:
			errs = append(errs, fmt.Errorf("delete ingress %s/%s: %w", t.namespace, t.class.Name, err))
		}
	}
	logger.Info(ctx, "ingress cleanup finished", "classes", len(pending), "requests", len(tasks), "deleted", deleted, "failed", len(errs))
	return deleted, errors.Join(errs...)
}
