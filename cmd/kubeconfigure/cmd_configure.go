package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kompox/kubeconfigure/domain/model"
	"github.com/kompox/kubeconfigure/usecase/configure"
)

// configureSpec describes edits applied to a loaded configuration form.
// Omitted fields leave the form unchanged.
type configureSpec struct {
	UseLoadBalancer  *bool                     `yaml:"useLoadBalancer,omitempty"`
	UseServerMetrics *bool                     `yaml:"useServerMetrics,omitempty"`
	StorageClasses   []configureStorageClass   `yaml:"storageClasses,omitempty"`
	IngressClasses   configureIngressClassEdit `yaml:"ingressClasses,omitempty"`
}

type configureStorageClass struct {
	Name                 string   `yaml:"name"`
	Selected             *bool    `yaml:"selected,omitempty"`
	AccessModes          []string `yaml:"accessModes,omitempty"` // exact set of selected modes
	AllowVolumeExpansion *bool    `yaml:"allowVolumeExpansion,omitempty"`
}

// configureIngressClassEdit lists ingress edits, applied in field order.
type configureIngressClassEdit struct {
	Add     []string          `yaml:"add,omitempty"`
	Rename  []configureRename `yaml:"rename,omitempty"`
	Remove  []string          `yaml:"remove,omitempty"`
	Restore []string          `yaml:"restore,omitempty"`
}

// configureRename renames the entry currently named From.
type configureRename struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// applyConfigureSpec drives the form through its mutation operations.
func applyConfigureSpec(form *configure.Form, spec *configureSpec) error {
	if spec.UseLoadBalancer != nil {
		form.SetUseLoadBalancer(*spec.UseLoadBalancer)
	}
	if spec.UseServerMetrics != nil {
		form.SetUseServerMetrics(*spec.UseServerMetrics)
	}

	for _, sc := range spec.StorageClasses {
		if sc.Selected != nil {
			if err := form.SelectStorageClass(sc.Name, *sc.Selected); err != nil {
				return err
			}
		}
		if sc.AccessModes != nil {
			want := make(map[string]bool, len(sc.AccessModes))
			for _, m := range sc.AccessModes {
				if m != model.AccessModeRWO && m != model.AccessModeRWX {
					return fmt.Errorf("storage class %s: %w: %s", sc.Name, model.ErrAccessModeUnknown, m)
				}
				want[m] = true
			}
			for _, m := range []string{model.AccessModeRWO, model.AccessModeRWX} {
				if err := form.SetAccessMode(sc.Name, m, want[m]); err != nil {
					return err
				}
			}
		}
		if sc.AllowVolumeExpansion != nil {
			if err := form.SetAllowVolumeExpansion(sc.Name, *sc.AllowVolumeExpansion); err != nil {
				return err
			}
		}
	}

	ic := spec.IngressClasses
	for _, name := range ic.Add {
		if err := form.RenameIngressClass(form.AddIngressClass(), name); err != nil {
			return err
		}
	}
	// Sources resolve against the names before any rename, so swaps are stable.
	renames := make([]int, len(ic.Rename))
	for i, r := range ic.Rename {
		renames[i] = form.IngressClassIndex(r.From)
		if renames[i] < 0 {
			return fmt.Errorf("rename ingress class %s: %w", r.From, model.ErrIndexOutOfRange)
		}
	}
	for i, r := range ic.Rename {
		if err := form.RenameIngressClass(renames[i], r.To); err != nil {
			return fmt.Errorf("rename ingress class %s: %w", r.From, err)
		}
	}
	for _, name := range ic.Remove {
		if err := form.RemoveIngressClass(form.IngressClassIndex(name)); err != nil {
			return fmt.Errorf("remove ingress class %s: %w", name, err)
		}
	}
	for _, name := range ic.Restore {
		if err := form.RestoreIngressClass(form.IngressClassIndex(name)); err != nil {
			return fmt.Errorf("restore ingress class %s: %w", name, err)
		}
	}
	return nil
}

func newCmdConfigure() *cobra.Command {
	c := &cobra.Command{
		Use:                "configure",
		Aliases:            []string{"cfg"},
		Short:              "Show or apply the Kubernetes configuration of an endpoint",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newCmdConfigureShow())
	c.AddCommand(newCmdConfigureApply())
	return c
}

// configureView is the printable summary of a form.
type configureView struct {
	EndpointID            string                 `yaml:"endpointId"`
	UseLoadBalancer       bool                   `yaml:"useLoadBalancer"`
	UseServerMetrics      bool                   `yaml:"useServerMetrics"`
	StorageClassAvailable bool                   `yaml:"storageClassAvailable"`
	StorageClasses        []configureViewStorage `yaml:"storageClasses"`
	IngressClasses        []configureViewIngress `yaml:"ingressClasses"`
	HasTraefikIngress     bool                   `yaml:"hasTraefikIngress"`
	Duplicates            []string               `yaml:"duplicates,omitempty"`
}

type configureViewStorage struct {
	Name                 string   `yaml:"name"`
	Provisioner          string   `yaml:"provisioner"`
	Selected             bool     `yaml:"selected"`
	AccessModes          []string `yaml:"accessModes,flow"`
	AllowVolumeExpansion bool     `yaml:"allowVolumeExpansion"`
}

type configureViewIngress struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	IsNew         bool   `yaml:"isNew,omitempty"`
	NeedsDeletion bool   `yaml:"needsDeletion,omitempty"`
}

func newConfigureView(form *configure.Form) *configureView {
	v := &configureView{
		EndpointID:            form.EndpointID,
		UseLoadBalancer:       form.UseLoadBalancer,
		UseServerMetrics:      form.UseServerMetrics,
		StorageClassAvailable: form.StorageClassAvailable(),
		HasTraefikIngress:     form.HasTraefikIngress(),
	}
	for _, sc := range form.StorageClasses {
		v.StorageClasses = append(v.StorageClasses, configureViewStorage{
			Name:                 sc.Name,
			Provisioner:          sc.Provisioner,
			Selected:             sc.Selected,
			AccessModes:          sc.SelectedAccessModes(),
			AllowVolumeExpansion: sc.AllowVolumeExpansion,
		})
	}
	for i, ic := range form.IngressClasses {
		v.IngressClasses = append(v.IngressClasses, configureViewIngress{
			Name:          ic.Name,
			Type:          string(ic.Type),
			IsNew:         ic.IsNew,
			NeedsDeletion: ic.NeedsDeletion,
		})
		if name, ok := form.Duplicates.Refs[i]; ok {
			v.Duplicates = append(v.Duplicates, fmt.Sprintf("%d:%s", i, name))
		}
	}
	return v
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func newCmdConfigureShow() *cobra.Command {
	return &cobra.Command{
		Use:                "show <endpoint-id>",
		Short:              "Show storage classes, ingress classes and feature toggles",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, err := buildConfigureUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "configure.show", args[0])
			defer func() { cleanup(err) }()
			out, err := uc.Load(ctx, &configure.LoadInput{EndpointID: args[0]})
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), newConfigureView(out.Form))
		},
	}
}

func newCmdConfigureApply() *cobra.Command {
	var (
		file    string
		timeout time.Duration
	)
	c := &cobra.Command{
		Use:                "apply <endpoint-id>",
		Short:              "Edit and save the endpoint configuration (from spec file)",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var spec configureSpec
			if err := readSpecFile(cmd, file, &spec); err != nil {
				return err
			}
			uc, err := buildConfigureUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "configure.apply", args[0])
			defer func() { cleanup(err) }()

			loaded, err := uc.Load(ctx, &configure.LoadInput{EndpointID: args[0]})
			if err != nil {
				return err
			}
			form := loaded.Form
			if err := applyConfigureSpec(form, &spec); err != nil {
				return err
			}
			out, err := uc.Configure(ctx, &configure.ConfigureInput{Form: form})
			if err != nil {
				return err
			}
			if !out.Applied {
				fmt.Fprintln(cmd.OutOrStdout(), "configuration not applied")
				return nil
			}
			return writeYAML(cmd.OutOrStdout(), newConfigureView(form))
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to configure spec (YAML), or '-' for stdin")
	c.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Maximum time for loading and saving")
	_ = c.MarkFlagRequired("file")
	return c
}
