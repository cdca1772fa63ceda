package inmem

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kompox/kubeconfigure/domain/model"
)

func TestEndpointRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEndpointRepository()

	e := &model.Endpoint{Name: "local", CreatedAt: time.Now()}
	e.Kubernetes.Configuration.IngressClasses = []model.IngressClass{{Name: "nginx"}}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.HasPrefix(e.ID, "ep-") {
		t.Fatalf("expected generated id, got %q", e.ID)
	}
	if err := repo.Create(ctx, &model.Endpoint{ID: e.ID, Name: "dup"}); !errors.Is(err, model.ErrEndpointInvalid) {
		t.Errorf("expected duplicate id error, got %v", err)
	}

	got, err := repo.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	// Stored values are copies.
	got.Kubernetes.Configuration.IngressClasses[0].Name = "changed"
	again, _ := repo.Get(ctx, e.ID)
	if again.Kubernetes.Configuration.IngressClasses[0].Name != "nginx" {
		t.Errorf("repository leaked internal state")
	}

	got.Name = "renamed"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "renamed" {
		t.Errorf("unexpected list: %+v", list)
	}

	if err := repo.Update(ctx, &model.Endpoint{ID: "missing"}); !errors.Is(err, model.ErrEndpointNotFound) {
		t.Errorf("expected ErrEndpointNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, e.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.Get(ctx, e.ID); !errors.Is(err, model.ErrEndpointNotFound) {
		t.Errorf("expected ErrEndpointNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, e.ID); !errors.Is(err, model.ErrEndpointNotFound) {
		t.Errorf("expected ErrEndpointNotFound on second delete, got %v", err)
	}
}

func TestEndpointCache(t *testing.T) {
	c := NewEndpointCache()
	if len(c.Endpoints()) != 0 {
		t.Fatalf("expected empty cache")
	}
	c.SetEndpoints([]*model.Endpoint{{ID: "a"}, {ID: "b"}})
	items := c.Endpoints()
	items[0].Kubernetes.Configuration.UseLoadBalancer = true
	if c.Endpoints()[0].Kubernetes.Configuration.UseLoadBalancer {
		t.Errorf("cache must return copies")
	}
	c.SetEndpoints(items)
	if !c.Endpoints()[0].Kubernetes.Configuration.UseLoadBalancer {
		t.Errorf("cache must store the given list")
	}
}
