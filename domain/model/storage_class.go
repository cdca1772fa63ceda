package model

import "context"

// Access mode names offered for storage classes.
const (
	AccessModeRWO = "RWO"
	AccessModeRWX = "RWX"
)

// StorageClass is the persisted form of a storage class selection.
type StorageClass struct {
	Name                 string   `json:"name"`
	Provisioner          string   `json:"provisioner"`
	AccessModes          []string `json:"accessModes"`
	AllowVolumeExpansion bool     `json:"allowVolumeExpansion"`
}

// Clone returns a deep copy of the storage class.
func (s StorageClass) Clone() StorageClass {
	out := s
	if s.AccessModes != nil {
		out.AccessModes = append([]string(nil), s.AccessModes...)
	}
	return out
}

// AccessModeOption is a selectable access policy for a storage class.
type AccessModeOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Selected    bool   `json:"selected"`
}

// DefaultAccessModeOptions returns the access policies offered for every storage class.
// RWO is preselected.
func DefaultAccessModeOptions() []AccessModeOption {
	return []AccessModeOption{
		{Name: AccessModeRWO, Description: "Allow read-write from a single pod only (RWO)", Selected: true},
		{Name: AccessModeRWX, Description: "Allow read-write access from one or more pods concurrently (RWX)"},
	}
}

// StoragePort is the domain port for cluster storage class operations.
type StoragePort interface {
	// StorageClassList returns the storage classes available on the endpoint cluster.
	StorageClassList(ctx context.Context, endpointID string) ([]StorageClass, error)
	// StorageClassPatch applies the difference between prev and next to the cluster object.
	StorageClassPatch(ctx context.Context, endpointID string, prev, next StorageClass) error
}
