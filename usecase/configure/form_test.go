package configure

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kompox/kubeconfigure/domain/model"
)

func formWithIngress(entries ...*IngressClassEntry) *Form {
	f := NewForm("ep1")
	f.IngressClasses = append(f.IngressClasses, entries...)
	f.refreshDuplicates()
	return f
}

func TestRemoveIngressClass(t *testing.T) {
	t.Run("new entry is removed immediately", func(t *testing.T) {
		f := formWithIngress(&IngressClassEntry{IngressClass: model.IngressClass{Name: "nginx"}})
		idx := f.AddIngressClass()
		if err := f.RemoveIngressClass(idx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.IngressClasses) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(f.IngressClasses))
		}
		if len(f.PendingDeletions()) != 0 {
			t.Errorf("expected no pending deletions")
		}
	})

	t.Run("persisted entry is flagged then restored", func(t *testing.T) {
		f := formWithIngress(&IngressClassEntry{IngressClass: model.IngressClass{Name: "nginx"}})
		if err := f.RemoveIngressClass(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.IngressClasses) != 1 || !f.IngressClasses[0].NeedsDeletion {
			t.Fatalf("expected entry to be flagged, got %+v", f.IngressClasses)
		}
		if err := f.RestoreIngressClass(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.IngressClasses[0].NeedsDeletion {
			t.Errorf("expected flag cleared after restore")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		f := NewForm("ep1")
		if err := f.RemoveIngressClass(0); !errors.Is(err, model.ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange, got %v", err)
		}
		if err := f.RestoreIngressClass(-1); !errors.Is(err, model.ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange, got %v", err)
		}
		if err := f.RenameIngressClass(3, "x"); !errors.Is(err, model.ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange, got %v", err)
		}
	})
}

func TestDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  map[int]string
	}{
		{name: "none", names: []string{"a", "b"}, want: map[int]string{}},
		{name: "adjacent", names: []string{"a", "a", "b"}, want: map[int]string{0: "a", 1: "a"}},
		{name: "reverse order", names: []string{"b", "a", "b"}, want: map[int]string{0: "b", 2: "b"}},
		{name: "empty names ignored", names: []string{"", "", "a"}, want: map[int]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm("ep1")
			for _, n := range tt.names {
				idx := f.AddIngressClass()
				if err := f.RenameIngressClass(idx, n); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
			if diff := cmp.Diff(tt.want, f.Duplicates.Refs); diff != "" {
				t.Errorf("duplicates mismatch (-want +got):\n%s", diff)
			}
			if f.Duplicates.HasDuplicates != (len(tt.want) > 0) {
				t.Errorf("HasDuplicates = %v", f.Duplicates.HasDuplicates)
			}
		})
	}

	t.Run("deleted entries are ignored", func(t *testing.T) {
		f := formWithIngress(
			&IngressClassEntry{IngressClass: model.IngressClass{Name: "nginx"}},
			&IngressClassEntry{IngressClass: model.IngressClass{Name: "nginx"}},
		)
		if !f.Duplicates.HasDuplicates {
			t.Fatalf("expected duplicates before removal")
		}
		if err := f.RemoveIngressClass(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Duplicates.HasDuplicates {
			t.Errorf("expected no duplicates after flagging one entry")
		}
		if err := f.RestoreIngressClass(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !f.Duplicates.HasDuplicates {
			t.Errorf("expected duplicates after restore")
		}
	})
}

func TestRenameIngressClass(t *testing.T) {
	tests := []struct {
		name     string
		initial  model.IngressClassType
		rename   string
		wantType model.IngressClassType
	}{
		{name: "nginx", rename: "nginx-public", wantType: model.IngressClassTypeNginx},
		{name: "traefik", rename: "my-traefik", wantType: model.IngressClassTypeTraefik},
		{name: "nginx wins over traefik", rename: "traefik-nginx", wantType: model.IngressClassTypeNginx},
		{name: "unknown keeps type", initial: model.IngressClassTypeTraefik, rename: "edge", wantType: model.IngressClassTypeTraefik},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := formWithIngress(&IngressClassEntry{IngressClass: model.IngressClass{Type: tt.initial}, IsNew: true})
			if err := f.RenameIngressClass(0, tt.rename); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := f.IngressClasses[0].Type; got != tt.wantType {
				t.Errorf("type = %q, want %q", got, tt.wantType)
			}
		})
	}
}

func TestHasTraefikIngress(t *testing.T) {
	f := formWithIngress(&IngressClassEntry{IngressClass: model.IngressClass{Name: "nginx", Type: model.IngressClassTypeNginx}})
	if f.HasTraefikIngress() {
		t.Fatalf("unexpected traefik")
	}
	idx := f.AddIngressClass()
	_ = f.RenameIngressClass(idx, "traefik")
	if !f.HasTraefikIngress() {
		t.Errorf("expected traefik")
	}
}

func TestStorageConfiguration(t *testing.T) {
	f := NewForm("ep1")
	if f.StorageClassAvailable() {
		t.Fatalf("expected no storage class")
	}
	f.StorageClasses = []*StorageClassOption{
		{Name: "standard", AccessModes: model.DefaultAccessModeOptions()},
	}
	if !f.StorageClassAvailable() {
		t.Fatalf("expected storage class available")
	}
	if err := f.SelectStorageClass("standard", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.HasValidStorageConfiguration() {
		t.Fatalf("default RWO selection should be valid")
	}
	if err := f.SetAccessMode("standard", model.AccessModeRWO, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.HasValidStorageConfiguration() {
		t.Errorf("selected class without access modes must be invalid")
	}
	if err := f.Validate(); !errors.Is(err, model.ErrConfigurationInvalid) {
		t.Errorf("expected ErrConfigurationInvalid, got %v", err)
	}
	if err := f.SelectStorageClass("standard", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.HasValidStorageConfiguration() {
		t.Errorf("unselected class must not be validated")
	}

	if err := f.SelectStorageClass("missing", true); !errors.Is(err, model.ErrStorageClassNotFound) {
		t.Errorf("expected ErrStorageClassNotFound, got %v", err)
	}
	if err := f.SetAccessMode("standard", "ROX", true); !errors.Is(err, model.ErrAccessModeUnknown) {
		t.Errorf("expected ErrAccessModeUnknown, got %v", err)
	}
}

func TestValidateIngressNames(t *testing.T) {
	f := NewForm("ep1")
	f.AddIngressClass()
	if err := f.Validate(); !errors.Is(err, model.ErrConfigurationInvalid) {
		t.Fatalf("expected empty name to be rejected, got %v", err)
	}
	_ = f.RenameIngressClass(0, "nginx")
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.AddIngressClass()
	_ = f.RenameIngressClass(1, "nginx")
	if err := f.Validate(); !errors.Is(err, model.ErrConfigurationInvalid) {
		t.Errorf("expected duplicate names to be rejected, got %v", err)
	}
}

func TestTransform(t *testing.T) {
	f := formWithIngress(
		&IngressClassEntry{IngressClass: model.IngressClass{Name: "nginx", Type: model.IngressClassTypeNginx}},
		&IngressClassEntry{IngressClass: model.IngressClass{Name: "traefik", Type: model.IngressClassTypeTraefik}, NeedsDeletion: true},
	)
	f.StorageClasses = []*StorageClassOption{
		{Name: "fast", Provisioner: "csi.fast", Selected: true, AllowVolumeExpansion: true, AccessModes: []model.AccessModeOption{{Name: "RWO", Selected: true}, {Name: "RWX", Selected: true}}},
		{Name: "slow", Provisioner: "csi.slow", AccessModes: model.DefaultAccessModeOptions()},
	}
	sc, ic := f.transform()
	wantSC := []model.StorageClass{{Name: "fast", Provisioner: "csi.fast", AccessModes: []string{"RWO", "RWX"}, AllowVolumeExpansion: true}}
	wantIC := []model.IngressClass{{Name: "nginx", Type: model.IngressClassTypeNginx}}
	if diff := cmp.Diff(wantSC, sc); diff != "" {
		t.Errorf("storage classes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantIC, ic); diff != "" {
		t.Errorf("ingress classes mismatch (-want +got):\n%s", diff)
	}
}

func TestIngressClassIndex(t *testing.T) {
	f := formWithIngress(
		&IngressClassEntry{IngressClass: model.IngressClass{Name: "nginx"}},
		&IngressClassEntry{IngressClass: model.IngressClass{Name: "traefik"}},
	)
	if got := f.IngressClassIndex("traefik"); got != 1 {
		t.Errorf("IngressClassIndex(traefik) = %d, want 1", got)
	}
	if got := f.IngressClassIndex("haproxy"); got != -1 {
		t.Errorf("IngressClassIndex(haproxy) = %d, want -1", got)
	}
}

func TestValidateOnlyEditedNames(t *testing.T) {
	f := formWithIngress(&IngressClassEntry{IngressClass: model.IngressClass{Name: "Legacy_Edge"}})
	if err := f.Validate(); err != nil {
		t.Fatalf("persisted name must be kept as is, got %v", err)
	}
	if err := f.RenameIngressClass(0, "Legacy_Edge"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.IngressClasses[0].Renamed {
		t.Errorf("same name must not count as a rename")
	}
	if err := f.RenameIngressClass(0, "Edge_2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.Validate(); !errors.Is(err, model.ErrConfigurationInvalid) {
		t.Errorf("expected renamed entry to be validated, got %v", err)
	}
	_ = f.RenameIngressClass(0, "edge.internal")
	if err := f.Validate(); err != nil {
		t.Errorf("dotted names are valid, got %v", err)
	}
	f.commit()
	if f.IngressClasses[0].Renamed || f.IngressClasses[0].IsNew {
		t.Errorf("commit must clear edit flags: %+v", f.IngressClasses[0])
	}
}
