package model

import (
	"context"
	"strings"
)

// IngressClassType identifies the controller implementation behind an ingress class.
type IngressClassType string

const (
	IngressClassTypeNginx   IngressClassType = "nginx"
	IngressClassTypeTraefik IngressClassType = "traefik"
)

// ingressClassTypes is ordered: the first match wins.
var ingressClassTypes = []IngressClassType{IngressClassTypeNginx, IngressClassTypeTraefik}

// DetectIngressClassType returns the controller type whose name is contained in
// the ingress class name. ok is false when no known type matches.
func DetectIngressClassType(name string) (IngressClassType, bool) {
	for _, t := range ingressClassTypes {
		if strings.Contains(name, string(t)) {
			return t, true
		}
	}
	return "", false
}

// IngressClass is the persisted form of an ingress controller configuration.
type IngressClass struct {
	Name string           `json:"name"`
	Type IngressClassType `json:"type"`
}

// IngressPort is the domain port for ingress resource operations.
type IngressPort interface {
	// IngressDelete deletes the ingress of the given class in namespace.
	// Returns an error wrapping ErrIngressNotFound when it does not exist.
	IngressDelete(ctx context.Context, endpointID, namespace string, class IngressClass) error
}
