// Package endpointcfg defines the configuration schema (structs) for kubeconfigure.yml,
// the file-backed endpoint inventory.
package endpointcfg

// Root is the root structure of kubeconfigure.yml.
type Root struct {
	Version   string     `yaml:"version"`
	Endpoints []Endpoint `yaml:"endpoints"`
}

// Endpoint represents a Kubernetes environment and its persisted configuration.
type Endpoint struct {
	ID            string        `yaml:"id,omitempty"` // generated when omitted
	Name          string        `yaml:"name"`
	URL           string        `yaml:"url,omitempty"`
	Kubeconfig    string        `yaml:"kubeconfig,omitempty"` // path, relative to the file or absolute
	Configuration Configuration `yaml:"configuration"`
}

// Configuration mirrors the endpoint Kubernetes configuration.
type Configuration struct {
	UseLoadBalancer  bool           `yaml:"useLoadBalancer"`
	UseServerMetrics bool           `yaml:"useServerMetrics"`
	StorageClasses   []StorageClass `yaml:"storageClasses,omitempty"`
	IngressClasses   []IngressClass `yaml:"ingressClasses,omitempty"`
}

// StorageClass is an enabled storage class with its access modes.
type StorageClass struct {
	Name                 string   `yaml:"name"`
	Provisioner          string   `yaml:"provisioner,omitempty"`
	AccessModes          []string `yaml:"accessModes"`
	AllowVolumeExpansion bool     `yaml:"allowVolumeExpansion,omitempty"`
}

// IngressClass is a configured ingress controller.
type IngressClass struct {
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"` // nginx | traefik; derived from name when omitted
}
