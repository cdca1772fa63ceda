package configure

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/kompox/kubeconfigure/domain/model"
	"github.com/kompox/kubeconfigure/internal/naming"
)

// StorageClassOption is a cluster storage class as presented in the form.
type StorageClassOption struct {
	Name                 string                   `json:"name"`
	Provisioner          string                   `json:"provisioner"`
	AllowVolumeExpansion bool                     `json:"allowVolumeExpansion"`
	Selected             bool                     `json:"selected"`
	AccessModes          []model.AccessModeOption `json:"accessModes"`
}

// SelectedAccessModes returns the names of the selected access modes.
func (o *StorageClassOption) SelectedAccessModes() []string {
	var out []string
	for _, m := range o.AccessModes {
		if m.Selected {
			out = append(out, m.Name)
		}
	}
	return out
}

func (o *StorageClassOption) storageClass() model.StorageClass {
	return model.StorageClass{
		Name:                 o.Name,
		Provisioner:          o.Provisioner,
		AccessModes:          o.SelectedAccessModes(),
		AllowVolumeExpansion: o.AllowVolumeExpansion,
	}
}

func (o *StorageClassOption) clone() *StorageClassOption {
	cp := *o
	cp.AccessModes = append([]model.AccessModeOption(nil), o.AccessModes...)
	return &cp
}

// IngressClassEntry is an ingress class row in the form.
type IngressClassEntry struct {
	model.IngressClass
	IsNew         bool `json:"isNew"`
	NeedsDeletion bool `json:"needsDeletion"`
	// Renamed is set once the name was edited in this form.
	Renamed bool `json:"renamed,omitempty"`
}

// Form is the endpoint configuration view model. Mutation methods are not safe
// for concurrent use; only the in-progress flag guarding Configure is.
type Form struct {
	EndpointID       string                `json:"endpointId"`
	Endpoint         *model.Endpoint       `json:"-"`
	StorageClasses   []*StorageClassOption `json:"storageClasses"`
	IngressClasses   []*IngressClassEntry  `json:"ingressClasses"`
	UseLoadBalancer  bool                  `json:"useLoadBalancer"`
	UseServerMetrics bool                  `json:"useServerMetrics"`
	Duplicates       Duplicates            `json:"duplicates"`
	ViewReady        bool                  `json:"viewReady"`

	// loaded holds storage classes as fetched, used as the patch baseline.
	loaded           []*StorageClassOption
	actionInProgress atomic.Bool
}

// NewForm returns an empty form for the endpoint.
func NewForm(endpointID string) *Form {
	return &Form{
		EndpointID:     endpointID,
		IngressClasses: []*IngressClassEntry{},
		Duplicates:     Duplicates{Refs: map[int]string{}},
	}
}

// ActionInProgress reports whether a save is running for this form.
func (f *Form) ActionInProgress() bool { return f.actionInProgress.Load() }

// StorageClassAvailable reports whether the cluster exposes any storage class.
func (f *Form) StorageClassAvailable() bool { return len(f.StorageClasses) > 0 }

// HasValidStorageConfiguration reports whether every selected storage class
// has at least one access mode.
func (f *Form) HasValidStorageConfiguration() bool {
	for _, sc := range f.StorageClasses {
		if sc.Selected && len(sc.SelectedAccessModes()) == 0 {
			return false
		}
	}
	return true
}

// HasTraefikIngress reports whether any entry uses the traefik controller.
func (f *Form) HasTraefikIngress() bool {
	for _, ic := range f.IngressClasses {
		if ic.Type == model.IngressClassTypeTraefik {
			return true
		}
	}
	return false
}

// PendingDeletions returns the entries flagged for deletion.
func (f *Form) PendingDeletions() []*IngressClassEntry {
	var out []*IngressClassEntry
	for _, ic := range f.IngressClasses {
		if ic.NeedsDeletion {
			out = append(out, ic)
		}
	}
	return out
}

// IngressClassIndex returns the index of the first entry named name, or -1.
func (f *Form) IngressClassIndex(name string) int {
	for i, ic := range f.IngressClasses {
		if ic.Name == name {
			return i
		}
	}
	return -1
}

// AddIngressClass appends a new, unsaved entry and returns its index.
func (f *Form) AddIngressClass() int {
	f.IngressClasses = append(f.IngressClasses, &IngressClassEntry{IsNew: true})
	f.refreshDuplicates()
	return len(f.IngressClasses) - 1
}

// RestoreIngressClass cancels a pending deletion.
func (f *Form) RestoreIngressClass(index int) error {
	ic, err := f.ingressClass(index)
	if err != nil {
		return err
	}
	ic.NeedsDeletion = false
	f.refreshDuplicates()
	return nil
}

// RemoveIngressClass drops an unsaved entry or flags a saved one for deletion.
func (f *Form) RemoveIngressClass(index int) error {
	ic, err := f.ingressClass(index)
	if err != nil {
		return err
	}
	if ic.IsNew {
		f.IngressClasses = append(f.IngressClasses[:index], f.IngressClasses[index+1:]...)
	} else {
		ic.NeedsDeletion = true
	}
	f.refreshDuplicates()
	return nil
}

// RenameIngressClass sets the entry name and re-derives its controller type.
// The type is left unchanged when the name matches no known controller.
func (f *Form) RenameIngressClass(index int, name string) error {
	ic, err := f.ingressClass(index)
	if err != nil {
		return err
	}
	if ic.Name != name {
		ic.Renamed = true
	}
	ic.Name = name
	if t, ok := model.DetectIngressClassType(name); ok {
		ic.Type = t
	}
	f.refreshDuplicates()
	return nil
}

// SetUseLoadBalancer toggles load balancer usage for exposed applications.
func (f *Form) SetUseLoadBalancer(v bool) { f.UseLoadBalancer = v }

// SetUseServerMetrics toggles metrics server usage.
func (f *Form) SetUseServerMetrics(v bool) { f.UseServerMetrics = v }

// SelectStorageClass marks the named storage class as enabled or disabled.
func (f *Form) SelectStorageClass(name string, selected bool) error {
	sc, err := f.storageClass(name)
	if err != nil {
		return err
	}
	sc.Selected = selected
	return nil
}

// SetAccessMode selects or clears an access mode of the named storage class.
func (f *Form) SetAccessMode(name, mode string, selected bool) error {
	sc, err := f.storageClass(name)
	if err != nil {
		return err
	}
	for i := range sc.AccessModes {
		if sc.AccessModes[i].Name == mode {
			sc.AccessModes[i].Selected = selected
			return nil
		}
	}
	return fmt.Errorf("%w: %s", model.ErrAccessModeUnknown, mode)
}

// SetAllowVolumeExpansion toggles volume expansion on the named storage class.
func (f *Form) SetAllowVolumeExpansion(name string, allow bool) error {
	sc, err := f.storageClass(name)
	if err != nil {
		return err
	}
	sc.AllowVolumeExpansion = allow
	return nil
}

// Validate checks the form before it can be saved. Name format is only
// checked on new or renamed entries; persisted names are kept as they are.
func (f *Form) Validate() error {
	var errs []error
	if !f.HasValidStorageConfiguration() {
		errs = append(errs, fmt.Errorf("%w: every selected storage class needs at least one access mode", model.ErrConfigurationInvalid))
	}
	if f.Duplicates.HasDuplicates {
		errs = append(errs, fmt.Errorf("%w: duplicate ingress class names: %s", model.ErrConfigurationInvalid, strings.Join(f.duplicateNames(), ", ")))
	}
	for i, ic := range f.IngressClasses {
		if ic.NeedsDeletion || !(ic.IsNew || ic.Renamed) {
			continue
		}
		if err := naming.ValidateIngressClassName(ic.Name); err != nil {
			errs = append(errs, fmt.Errorf("%w: ingress class #%d: %v", model.ErrConfigurationInvalid, i, err))
		}
	}
	return errors.Join(errs...)
}

// transform builds the persisted payload from the form values.
func (f *Form) transform() ([]model.StorageClass, []model.IngressClass) {
	storageClasses := []model.StorageClass{}
	for _, sc := range f.StorageClasses {
		if sc.Selected {
			storageClasses = append(storageClasses, sc.storageClass())
		}
	}
	ingressClasses := []model.IngressClass{}
	for _, ic := range f.IngressClasses {
		if !ic.NeedsDeletion {
			ingressClasses = append(ingressClasses, ic.IngressClass)
		}
	}
	return storageClasses, ingressClasses
}

// loadedStorageClass returns the storage class as it was fetched at load time.
func (f *Form) loadedStorageClass(name string) (model.StorageClass, bool) {
	for _, sc := range f.loaded {
		if sc.Name == name {
			return sc.storageClass(), true
		}
	}
	return model.StorageClass{}, false
}

// commit rebases the form on the state just persisted.
func (f *Form) commit() {
	kept := f.IngressClasses[:0]
	for _, ic := range f.IngressClasses {
		if ic.NeedsDeletion {
			continue
		}
		ic.IsNew = false
		ic.Renamed = false
		kept = append(kept, ic)
	}
	f.IngressClasses = kept
	f.snapshot()
	f.refreshDuplicates()
}

func (f *Form) snapshot() {
	f.loaded = make([]*StorageClassOption, 0, len(f.StorageClasses))
	for _, sc := range f.StorageClasses {
		f.loaded = append(f.loaded, sc.clone())
	}
}

func (f *Form) refreshDuplicates() {
	names := make([]string, len(f.IngressClasses))
	for i, ic := range f.IngressClasses {
		if !ic.NeedsDeletion {
			names[i] = ic.Name
		}
	}
	refs := findDuplicates(names)
	f.Duplicates = Duplicates{Refs: refs, HasDuplicates: len(refs) > 0}
}

func (f *Form) duplicateNames() []string {
	seen := map[string]bool{}
	var out []string
	for i := range f.IngressClasses {
		name, ok := f.Duplicates.Refs[i]
		if ok && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func (f *Form) ingressClass(index int) (*IngressClassEntry, error) {
	if index < 0 || index >= len(f.IngressClasses) {
		return nil, fmt.Errorf("%w: ingress class #%d", model.ErrIndexOutOfRange, index)
	}
	return f.IngressClasses[index], nil
}

func (f *Form) storageClass(name string) (*StorageClassOption, error) {
	for _, sc := range f.StorageClasses {
		if sc.Name == name {
			return sc, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrStorageClassNotFound, name)
}
