package kube

import (
	"context"
	"fmt"
	"sort"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/kompox/kubeconfigure/domain/model"
)

// ResourcePoolList returns one resource pool per namespace, ordered by name.
// The quota is the first ResourceQuota found in the namespace, if any.
func (c *Client) ResourcePoolList(ctx context.Context) ([]model.ResourcePool, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	nsList, err := c.Clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}
	quotas, err := c.Clientset.CoreV1().ResourceQuotas(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list resource quotas: %w", err)
	}
	quotaByNS := make(map[string]string, len(quotas.Items))
	for _, q := range quotas.Items {
		if _, ok := quotaByNS[q.Namespace]; !ok {
			quotaByNS[q.Namespace] = q.Name
		}
	}

	out := make([]model.ResourcePool, 0, len(nsList.Items))
	for _, ns := range nsList.Items {
		out = append(out, model.ResourcePool{
			Namespace: model.ResourcePoolNamespace{Name: ns.Name, Status: string(ns.Status.Phase)},
			Quota:     quotaByNS[ns.Name],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Namespace.Name < out[j].Namespace.Name })
	return out, nil
}
