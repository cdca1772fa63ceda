package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetectIngressClassType(t *testing.T) {
	tests := []struct {
		name   string
		want   IngressClassType
		wantOK bool
	}{
		{name: "nginx", want: IngressClassTypeNginx, wantOK: true},
		{name: "public-nginx", want: IngressClassTypeNginx, wantOK: true},
		{name: "traefik-lb", want: IngressClassTypeTraefik, wantOK: true},
		{name: "nginx-traefik", want: IngressClassTypeNginx, wantOK: true},
		{name: "haproxy"},
		{name: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectIngressClassType(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DetectIngressClassType(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsUserPool(t *testing.T) {
	tests := []struct {
		ns   string
		want bool
	}{
		{"kube-system", false},
		{"kube-public", false},
		{"kube-node-lease", false},
		{"portainer", false},
		{"default", false},
		{"team-a", true},
	}
	for _, tt := range tests {
		p := ResourcePool{Namespace: ResourcePoolNamespace{Name: tt.ns}}
		if got := p.IsUserPool(); got != tt.want {
			t.Errorf("IsUserPool(%q) = %v, want %v", tt.ns, got, tt.want)
		}
	}
}

func TestEndpointConfigurationClone(t *testing.T) {
	orig := EndpointConfiguration{
		UseLoadBalancer: true,
		StorageClasses:  []StorageClass{{Name: "standard", AccessModes: []string{AccessModeRWO}}},
		IngressClasses:  []IngressClass{{Name: "nginx", Type: IngressClassTypeNginx}},
	}
	cp := orig.Clone()
	if diff := cmp.Diff(orig, cp); diff != "" {
		t.Fatalf("clone mismatch (-orig +clone):\n%s", diff)
	}
	cp.StorageClasses[0].AccessModes[0] = AccessModeRWX
	cp.IngressClasses[0].Name = "changed"
	if orig.StorageClasses[0].AccessModes[0] != AccessModeRWO || orig.IngressClasses[0].Name != "nginx" {
		t.Errorf("clone shares memory with the original")
	}

	sc, ok := orig.StorageClassByName("standard")
	if !ok || sc.Name != "standard" {
		t.Errorf("StorageClassByName(standard) = %+v, %v", sc, ok)
	}
	if _, ok := orig.StorageClassByName("missing"); ok {
		t.Errorf("StorageClassByName(missing) should not match")
	}
}

func TestDefaultAccessModeOptions(t *testing.T) {
	opts := DefaultAccessModeOptions()
	if len(opts) != 2 || opts[0].Name != AccessModeRWO || !opts[0].Selected || opts[1].Name != AccessModeRWX || opts[1].Selected {
		t.Errorf("unexpected defaults: %+v", opts)
	}
	opts[0].Selected = false
	if !DefaultAccessModeOptions()[0].Selected {
		t.Errorf("defaults must be a fresh slice")
	}
}
