package inmem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kompox/kubeconfigure/config/endpointcfg"
	"github.com/kompox/kubeconfigure/domain/model"
)

func TestStoreLoadAndSave(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kubeconfigure.yml")
	content := `
version: v1
endpoints:
  - id: local
    name: Local
    configuration:
      ingressClasses:
        - name: nginx
  - name: Generated
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}

	s := NewStore()
	if err := s.LoadFromFile(ctx, path); err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if len(s.EndpointCache.Endpoints()) != 2 {
		t.Fatalf("cache not primed")
	}
	local, err := s.EndpointRepository.Get(ctx, "local")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	local.Kubernetes.Configuration.UseServerMetrics = true
	if err := s.EndpointRepository.Update(ctx, local); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := s.SaveToFile(ctx, path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	cfg, err := endpointcfg.Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	var found bool
	for _, e := range cfg.Endpoints {
		if e.ID == "" {
			t.Errorf("saved endpoint without id: %+v", e)
		}
		if e.ID == "local" {
			found = true
			if !e.Configuration.UseServerMetrics {
				t.Errorf("update not saved")
			}
		}
	}
	if !found {
		t.Errorf("local endpoint missing after save")
	}
}

func TestStoreLoadInvalid(t *testing.T) {
	s := NewStore()
	cfg := &endpointcfg.Root{Endpoints: []endpointcfg.Endpoint{{Name: ""}}}
	if err := s.LoadFromConfig(context.Background(), cfg); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestFileBackedWritesOnChange(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kubeconfigure.yml")
	s := NewStore()
	repo := s.FileBacked(path)

	e := &model.Endpoint{Name: "local"}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	e.Kubernetes.Configuration.UseLoadBalancer = true
	if err := repo.Update(ctx, e); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	cfg, err := endpointcfg.Load(path)
	if err != nil {
		t.Fatalf("inventory not written: %v", err)
	}
	if len(cfg.Endpoints) != 1 || !cfg.Endpoints[0].Configuration.UseLoadBalancer {
		t.Errorf("update not written: %+v", cfg.Endpoints)
	}

	if err := repo.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	cfg, err = endpointcfg.Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(cfg.Endpoints) != 0 {
		t.Errorf("delete not written: %+v", cfg.Endpoints)
	}
}

func TestFileBackedWriteFailure(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.FileBacked(filepath.Join(t.TempDir(), "missing-dir", "kubeconfigure.yml"))
	if err := repo.Create(ctx, &model.Endpoint{Name: "local"}); err == nil {
		t.Fatalf("expected write error")
	}
}
