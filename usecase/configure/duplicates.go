package configure

// Duplicates tracks repeated ingress class names in the form.
type Duplicates struct {
	// Refs maps entry index to the duplicated name, for every occurrence.
	Refs          map[int]string `json:"refs"`
	HasDuplicates bool           `json:"hasDuplicates"`
}

// findDuplicates returns index -> value for every occurrence of a non-empty value
// that appears more than once.
func findDuplicates(values []string) map[int]string {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		if v != "" {
			counts[v]++
		}
	}
	refs := make(map[int]string)
	for i, v := range values {
		if v != "" && counts[v] > 1 {
			refs[i] = v
		}
	}
	return refs
}
