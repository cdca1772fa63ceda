package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// readSpecFile decodes a YAML spec from path, or from stdin when path is "-".
// Unknown fields are rejected.
func readSpecFile(cmd *cobra.Command, path string, out any) error {
	if path == "" {
		return errors.New("spec file required (-f)")
	}
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("spec file %s is empty", path)
		}
		return fmt.Errorf("decode spec %s: %w", path, err)
	}
	return nil
}
