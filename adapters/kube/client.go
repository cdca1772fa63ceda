package kube

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kompox/kubeconfigure/domain/model"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// Client bundles the REST config and typed clientset of one endpoint cluster.
type Client struct {
	RESTConfig *rest.Config
	Clientset  kubernetes.Interface
}

// Options tunes client construction. Zero values are replaced by defaults.
type Options struct {
	UserAgent string
	QPS       float32
	Burst     int
	// Server overrides the API server address found in the kubeconfig.
	Server string
	// Context selects a kubeconfig context other than the current one.
	Context string
}

func (o Options) withDefaults() Options {
	if o.QPS <= 0 {
		o.QPS = 20
	}
	if o.Burst <= 0 {
		o.Burst = 50
	}
	return o
}

func (o Options) overrides() *clientcmd.ConfigOverrides {
	ov := &clientcmd.ConfigOverrides{CurrentContext: o.Context}
	ov.ClusterInfo.Server = o.Server
	return ov
}

// NewClientForEndpoint connects to the cluster of e. The endpoint kubeconfig
// path wins over defaultKubeconfig and the endpoint URL, when set, overrides
// the server of the selected context.
func NewClientForEndpoint(e *model.Endpoint, defaultKubeconfig string, opts Options) (*Client, error) {
	if e == nil {
		return nil, errors.New("endpoint is nil")
	}
	path := e.Kubeconfig
	if path == "" {
		path = defaultKubeconfig
	}
	if e.URL != "" {
		opts.Server = e.URL
	}
	cfg, err := LoadRESTConfig(path, opts)
	if err != nil {
		return nil, err
	}
	return NewClientFromRESTConfig(cfg, opts)
}

// NewClientFromRESTConfig builds a Client from cfg. cfg is modified in place.
func NewClientFromRESTConfig(cfg *rest.Config, opts Options) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("REST config is nil")
	}
	opts = opts.withDefaults()
	cfg.QPS = opts.QPS
	cfg.Burst = opts.Burst
	if opts.UserAgent != "" {
		cfg.UserAgent = opts.UserAgent
	}
	cs, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build clientset: %w", err)
	}
	return &Client{RESTConfig: cfg, Clientset: cs}, nil
}

// resolveKubeconfig returns explicit when set, else the first existing entry
// of $KUBECONFIG, else $KUBECONFIG verbatim so the load error names it.
func resolveKubeconfig(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	env := strings.TrimSpace(os.Getenv(clientcmd.RecommendedConfigPathEnvVar))
	for _, p := range filepath.SplitList(env) {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return env
}

// LoadRESTConfig loads the REST config for a kubeconfig path. Without a path
// it tries $KUBECONFIG, the in-cluster config (only when no Server or Context
// override is requested) and finally the default loading rules.
func LoadRESTConfig(kubeconfigPath string, opts Options) (*rest.Config, error) {
	if path := resolveKubeconfig(kubeconfigPath); path != "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		raw, err := clientcmd.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("read kubeconfig %q: %w", path, err)
		}
		cfg, err := clientcmd.NewDefaultClientConfig(*raw, opts.overrides()).ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("kubeconfig %q (context %q): %w", path, raw.CurrentContext, err)
		}
		return cfg, nil
	}

	if opts.Server == "" && opts.Context == "" {
		if cfg, err := rest.InClusterConfig(); err == nil {
			return cfg, nil
		}
	}

	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	cfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, opts.overrides()).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load default kubeconfig: %w", err)
	}
	return cfg, nil
}

func (c *Client) ready() error {
	if c == nil || c.Clientset == nil {
		return errors.New("kube client is not initialized")
	}
	return nil
}
