package endpointcfg

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from the given path and returns a deserialized Root.
// Relative kubeconfig paths are resolved against the directory of the file.
// It performs no validation beyond YAML decoding; call Validate separately.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var cfg Root
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	base := filepath.Dir(path)
	for i := range cfg.Endpoints {
		kc := cfg.Endpoints[i].Kubeconfig
		if kc != "" && !filepath.IsAbs(kc) {
			cfg.Endpoints[i].Kubeconfig = filepath.Join(base, kc)
		}
	}
	return &cfg, nil
}

// Save writes the configuration back to path as YAML.
func Save(path string, cfg *Root) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
