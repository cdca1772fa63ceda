package model

import "time"

// Endpoint represents a registered Kubernetes environment managed by the console.
type Endpoint struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	URL        string             `json:"url,omitempty"`
	Kubeconfig string             `json:"kubeconfig,omitempty"` // path to kubeconfig; empty uses default loading rules
	Kubernetes EndpointKubernetes `json:"kubernetes"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// EndpointKubernetes holds Kubernetes specific endpoint data.
type EndpointKubernetes struct {
	Configuration EndpointConfiguration `json:"configuration"`
}

// EndpointConfiguration is the persisted cluster feature configuration.
// It is owned by the endpoint and replaced as a whole on save.
type EndpointConfiguration struct {
	UseLoadBalancer  bool           `json:"useLoadBalancer"`
	UseServerMetrics bool           `json:"useServerMetrics"`
	StorageClasses   []StorageClass `json:"storageClasses"`
	IngressClasses   []IngressClass `json:"ingressClasses"`
}

// Clone returns a deep copy of the configuration.
func (c EndpointConfiguration) Clone() EndpointConfiguration {
	out := EndpointConfiguration{
		UseLoadBalancer:  c.UseLoadBalancer,
		UseServerMetrics: c.UseServerMetrics,
	}
	if c.StorageClasses != nil {
		out.StorageClasses = make([]StorageClass, len(c.StorageClasses))
		for i, sc := range c.StorageClasses {
			out.StorageClasses[i] = sc.Clone()
		}
	}
	if c.IngressClasses != nil {
		out.IngressClasses = append([]IngressClass(nil), c.IngressClasses...)
	}
	return out
}

// StorageClassByName returns the persisted storage class with the given name, if any.
func (c *EndpointConfiguration) StorageClassByName(name string) (StorageClass, bool) {
	for _, sc := range c.StorageClasses {
		if sc.Name == name {
			return sc, true
		}
	}
	return StorageClass{}, false
}
