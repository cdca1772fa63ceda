package main

import (
	"github.com/spf13/cobra"

	"github.com/kompox/kubeconfigure/adapters/kube"
	"github.com/kompox/kubeconfigure/adapters/ui"
	"github.com/kompox/kubeconfigure/internal/terminal"
	"github.com/kompox/kubeconfigure/usecase/configure"
	"github.com/kompox/kubeconfigure/usecase/endpoint"
)

// buildEndpointUseCase creates the endpoint use case with required repositories.
func buildEndpointUseCase(cmd *cobra.Command) (*endpoint.UseCase, error) {
	r, err := buildRepos(cmd)
	if err != nil {
		return nil, err
	}
	return &endpoint.UseCase{Repos: &endpoint.Repos{Endpoint: r.Endpoint, Cache: r.Cache}}, nil
}

// buildConfigureUseCase creates the configure use case with Kubernetes ports
// and terminal notification and confirmation.
func buildConfigureUseCase(cmd *cobra.Command) (*configure.UseCase, error) {
	r, err := buildRepos(cmd)
	if err != nil {
		return nil, err
	}
	s := settingsFromCmd(cmd)
	ports := kube.NewEndpointPorts(r.Endpoint, s.Kubeconfig, kube.Options{UserAgent: "kubeconfigure/" + version})
	return &configure.UseCase{
		Repos:            &configure.Repos{Endpoint: r.Endpoint, Cache: r.Cache},
		StoragePort:      ports,
		IngressPort:      ports,
		ResourcePoolPort: ports,
		Notifier:         &ui.Notifier{Out: cmd.ErrOrStderr()},
		Confirmer:        &ui.Confirmer{AssumeYes: s.AssumeYes, Interactive: terminal.IsInteractive()},
		Concurrency:      s.Concurrency,
	}, nil
}
