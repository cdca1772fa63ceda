package model

import "context"

// Namespace names with special meaning for resource pools.
const (
	NamespaceDefault = "default"
)

var systemNamespaces = map[string]bool{
	"kube-system":     true,
	"kube-public":     true,
	"kube-node-lease": true,
	"portainer":       true,
}

// IsSystemNamespace reports whether name is reserved for cluster or console components.
func IsSystemNamespace(name string) bool { return systemNamespaces[name] }

// IsDefaultNamespace reports whether name is the default namespace.
func IsDefaultNamespace(name string) bool { return name == NamespaceDefault }

// ResourcePool is a namespace with its optional resource quota.
type ResourcePool struct {
	Namespace ResourcePoolNamespace `json:"namespace"`
	Quota     string                `json:"quota,omitempty"`
}

// ResourcePoolNamespace describes the namespace backing a resource pool.
type ResourcePoolNamespace struct {
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// IsUserPool reports whether the pool belongs to users (neither system nor default).
func (p ResourcePool) IsUserPool() bool {
	return !IsSystemNamespace(p.Namespace.Name) && !IsDefaultNamespace(p.Namespace.Name)
}

// ResourcePoolPort is the domain port listing resource pools.
type ResourcePoolPort interface {
	ResourcePoolList(ctx context.Context, endpointID string) ([]ResourcePool, error)
}
