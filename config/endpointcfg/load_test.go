package endpointcfg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kubeconfigure.yml")

	content := `
version: v1
endpoints:
  - id: local
    name: Local cluster
    url: https://127.0.0.1:6443
    kubeconfig: kube/config
    configuration:
      useLoadBalancer: true
      storageClasses:
        - name: standard
          provisioner: rancher.io/local-path
          accessModes: [RWO]
      ingressClasses:
        - name: nginx
        - name: traefik
          type: traefik
  - name: Remote
    kubeconfig: /etc/kube/remote
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Version != "v1" {
		t.Errorf("expected version v1, got %s", cfg.Version)
	}
	if len(cfg.Endpoints) != 2 {
		t.Fatalf("expected 2 endpoints, got %d", len(cfg.Endpoints))
	}
	local := cfg.Endpoints[0]
	if local.Kubeconfig != filepath.Join(dir, "kube/config") {
		t.Errorf("relative kubeconfig not resolved: %s", local.Kubeconfig)
	}
	if !local.Configuration.UseLoadBalancer {
		t.Errorf("expected useLoadBalancer")
	}
	if len(local.Configuration.StorageClasses) != 1 || local.Configuration.StorageClasses[0].AccessModes[0] != "RWO" {
		t.Errorf("unexpected storage classes: %+v", local.Configuration.StorageClasses)
	}
	if cfg.Endpoints[1].Kubeconfig != "/etc/kube/remote" {
		t.Errorf("absolute kubeconfig changed: %s", cfg.Endpoints[1].Kubeconfig)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate returned error: %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("endpoints: [\n"), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for invalid YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yml")
	in := &Root{Version: "v1", Endpoints: []Endpoint{{ID: "a", Name: "A", Kubeconfig: "/k"}}}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(out.Endpoints) != 1 || out.Endpoints[0].ID != "a" || out.Endpoints[0].Kubeconfig != "/k" {
		t.Errorf("unexpected endpoints: %+v", out.Endpoints)
	}
}
