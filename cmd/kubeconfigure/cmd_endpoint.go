package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kompox/kubeconfigure/config/endpointcfg"
	"github.com/kompox/kubeconfigure/usecase/endpoint"
)

// endpointSpec is the YAML on-disk representation for create/update.
type endpointSpec struct {
	Name          string                     `yaml:"name"`
	URL           *string                    `yaml:"url,omitempty"`
	Kubeconfig    *string                    `yaml:"kubeconfig,omitempty"`
	Configuration *endpointcfg.Configuration `yaml:"configuration,omitempty"`
}

func newCmdEndpoint() *cobra.Command {
	c := &cobra.Command{
		Use:                "endpoint",
		Aliases:            []string{"ep"},
		Short:              "Manage registered Kubernetes endpoints",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newCmdEndpointList())
	c.AddCommand(newCmdEndpointGet())
	c.AddCommand(newCmdEndpointCreate())
	c.AddCommand(newCmdEndpointUpdate())
	c.AddCommand(newCmdEndpointDelete())
	return c
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newCmdEndpointList() *cobra.Command {
	return &cobra.Command{
		Use:                "list",
		Short:              "List endpoints",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildEndpointUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			out, err := uc.List(ctx, &endpoint.ListInput{})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, it := range out.Endpoints {
				if err := enc.Encode(it); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newCmdEndpointGet() *cobra.Command {
	return &cobra.Command{
		Use:                "get <id>",
		Short:              "Get an endpoint",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildEndpointUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			out, err := uc.Get(ctx, &endpoint.GetInput{EndpointID: args[0]})
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), out.Endpoint)
		},
	}
}

func newCmdEndpointCreate() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:                "create",
		Short:              "Register an endpoint (from spec file)",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var spec endpointSpec
			if err := readSpecFile(cmd, file, &spec); err != nil {
				return err
			}
			uc, err := buildEndpointUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "endpoint.create", spec.Name)
			defer func() { cleanup(err) }()

			in := &endpoint.CreateInput{Name: spec.Name}
			if spec.URL != nil {
				in.URL = *spec.URL
			}
			if spec.Kubeconfig != nil {
				in.Kubeconfig = *spec.Kubeconfig
			}
			if spec.Configuration != nil {
				root := &endpointcfg.Root{Endpoints: []endpointcfg.Endpoint{{Name: spec.Name, Configuration: *spec.Configuration}}}
				if err := root.Validate(); err != nil {
					return err
				}
				cfg := root.ToModels()[0].Kubernetes.Configuration
				in.Configuration = &cfg
			}
			out, err := uc.Create(ctx, in)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), out.Endpoint)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to endpoint spec (YAML), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdEndpointUpdate() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:                "update <id>",
		Short:              "Update an endpoint (merge from spec)",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var spec endpointSpec
			if err := readSpecFile(cmd, file, &spec); err != nil {
				return err
			}
			if spec.Configuration != nil {
				return fmt.Errorf("configuration cannot be updated here, use 'configure apply'")
			}
			uc, err := buildEndpointUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "endpoint.update", args[0])
			defer func() { cleanup(err) }()

			in := &endpoint.UpdateInput{EndpointID: args[0], URL: spec.URL, Kubeconfig: spec.Kubeconfig}
			if spec.Name != "" {
				in.Name = &spec.Name
			}
			out, err := uc.Update(ctx, in)
			if err != nil {
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), out.Endpoint)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to endpoint spec (YAML), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdEndpointDelete() *cobra.Command {
	return &cobra.Command{
		Use:                "delete <id>",
		Short:              "Delete an endpoint",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, err := buildEndpointUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "endpoint.delete", args[0])
			defer func() { cleanup(err) }()
			if _, err := uc.Delete(ctx, &endpoint.DeleteInput{EndpointID: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
