package endpointcfg

import (
	"fmt"

	"github.com/kompox/kubeconfigure/domain/model"
	"github.com/kompox/kubeconfigure/internal/naming"
)

// Validate performs semantic validation on the configuration tree.
func (r *Root) Validate() error {
	ids := make(map[string]struct{}, len(r.Endpoints))
	for i := range r.Endpoints {
		e := &r.Endpoints[i]
		if err := e.validate(); err != nil {
			return fmt.Errorf("endpoints[%d]: %w", i, err)
		}
		if e.ID == "" {
			continue
		}
		if _, exists := ids[e.ID]; exists {
			return fmt.Errorf("endpoints[%d].id: duplicate endpoint id %q", i, e.ID)
		}
		ids[e.ID] = struct{}{}
	}
	return nil
}

func (e *Endpoint) validate() error {
	if err := naming.ValidateEndpointName(e.Name); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	return e.Configuration.validate()
}

func (c *Configuration) validate() error {
	for i, sc := range c.StorageClasses {
		if sc.Name == "" {
			return fmt.Errorf("storageClasses[%d].name: must not be empty", i)
		}
		if len(sc.AccessModes) == 0 {
			return fmt.Errorf("storageClasses[%d].accessModes: at least one access mode is required", i)
		}
		for _, m := range sc.AccessModes {
			if m != model.AccessModeRWO && m != model.AccessModeRWX {
				return fmt.Errorf("storageClasses[%d].accessModes: invalid mode %q, must be %q or %q", i, m, model.AccessModeRWO, model.AccessModeRWX)
			}
		}
	}
	seen := make(map[string]struct{}, len(c.IngressClasses))
	for i, ic := range c.IngressClasses {
		if err := naming.ValidateIngressClassName(ic.Name); err != nil {
			return fmt.Errorf("ingressClasses[%d].name: %w", i, err)
		}
		if _, exists := seen[ic.Name]; exists {
			return fmt.Errorf("ingressClasses[%d].name: duplicate ingress class name %q", i, ic.Name)
		}
		seen[ic.Name] = struct{}{}
		switch model.IngressClassType(ic.Type) {
		case "", model.IngressClassTypeNginx, model.IngressClassTypeTraefik:
		default:
			return fmt.Errorf("ingressClasses[%d].type: invalid type %q, must be %q or %q", i, ic.Type, model.IngressClassTypeNginx, model.IngressClassTypeTraefik)
		}
	}
	return nil
}
