package endpointcfg

import (
	"time"

	"github.com/kompox/kubeconfigure/domain/model"
)

// ToModels converts the configured endpoints to domain models.
// IDs are kept as written; empty IDs are left for the repository to assign.
func (r *Root) ToModels() []*model.Endpoint {
	now := time.Now().UTC()
	out := make([]*model.Endpoint, 0, len(r.Endpoints))
	for _, e := range r.Endpoints {
		out = append(out, &model.Endpoint{
			ID:         e.ID,
			Name:       e.Name,
			URL:        e.URL,
			Kubeconfig: e.Kubeconfig,
			Kubernetes: model.EndpointKubernetes{Configuration: e.Configuration.toModel()},
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return out
}

func (c Configuration) toModel() model.EndpointConfiguration {
	out := model.EndpointConfiguration{
		UseLoadBalancer:  c.UseLoadBalancer,
		UseServerMetrics: c.UseServerMetrics,
		StorageClasses:   make([]model.StorageClass, 0, len(c.StorageClasses)),
		IngressClasses:   make([]model.IngressClass, 0, len(c.IngressClasses)),
	}
	for _, sc := range c.StorageClasses {
		out.StorageClasses = append(out.StorageClasses, model.StorageClass{
			Name:                 sc.Name,
			Provisioner:          sc.Provisioner,
			AccessModes:          append([]string(nil), sc.AccessModes...),
			AllowVolumeExpansion: sc.AllowVolumeExpansion,
		})
	}
	for _, ic := range c.IngressClasses {
		t := model.IngressClassType(ic.Type)
		if t == "" {
			t, _ = model.DetectIngressClassType(ic.Name)
		}
		out.IngressClasses = append(out.IngressClasses, model.IngressClass{Name: ic.Name, Type: t})
	}
	return out
}

// FromModels builds a configuration tree from domain models.
func FromModels(endpoints []*model.Endpoint) *Root {
	root := &Root{Version: "v1", Endpoints: make([]Endpoint, 0, len(endpoints))}
	for _, e := range endpoints {
		cfg := e.Kubernetes.Configuration
		c := Configuration{UseLoadBalancer: cfg.UseLoadBalancer, UseServerMetrics: cfg.UseServerMetrics}
		for _, sc := range cfg.StorageClasses {
			c.StorageClasses = append(c.StorageClasses, StorageClass{
				Name:                 sc.Name,
				Provisioner:          sc.Provisioner,
				AccessModes:          append([]string(nil), sc.AccessModes...),
				AllowVolumeExpansion: sc.AllowVolumeExpansion,
			})
		}
		for _, ic := range cfg.IngressClasses {
			c.IngressClasses = append(c.IngressClasses, IngressClass{Name: ic.Name, Type: string(ic.Type)})
		}
		root.Endpoints = append(root.Endpoints, Endpoint{
			ID:            e.ID,
			Name:          e.Name,
			URL:           e.URL,
			Kubeconfig:    e.Kubeconfig,
			Configuration: c,
		})
	}
	return root
}
