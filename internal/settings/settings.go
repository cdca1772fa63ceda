// Package settings resolves global CLI settings from flags and KUBECONFIGURE_*
// environment variables.
package settings

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding flag defaults.
const EnvPrefix = "KUBECONFIGURE"

// Keys shared by flags, environment variables and Settings fields.
const (
	KeyDBURL            = "db-url"
	KeyLogFormat        = "log-format"
	KeyLogLevel         = "log-level"
	KeyLogOutput        = "log-output"
	KeyLogDir           = "log-dir"
	KeyLogRetentionDays = "log-retention-days"
	KeyKubeconfig       = "kubeconfig"
	KeyConcurrency      = "concurrency"
	KeyAssumeYes        = "yes"
)

// DefaultDBURL keeps endpoints in a YAML file in the working directory.
const DefaultDBURL = "file:kubeconfigure.yml"

// Settings is the resolved global configuration.
type Settings struct {
	DBURL            string
	LogFormat        string
	LogLevel         string
	LogOutput        string
	LogDir           string
	LogRetentionDays int
	// Kubeconfig is used for endpoints without their own kubeconfig path.
	Kubeconfig  string
	Concurrency int
	// AssumeYes answers confirmation prompts with yes.
	AssumeYes bool
}

// New returns a viper instance reading KUBECONFIGURE_* variables, e.g.
// KUBECONFIGURE_DB_URL for --db-url.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyDBURL, DefaultDBURL)
	v.SetDefault(KeyLogFormat, "human")
	v.SetDefault(KeyLogLevel, "INFO")
	v.SetDefault(KeyLogOutput, "-")
	v.SetDefault(KeyConcurrency, 8)
	return v
}

// AddFlags registers the global flags on fs and binds them to v.
func AddFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.String(KeyDBURL, DefaultDBURL, "Database URL (file:/path/to/kubeconfigure.yml | sqlite:/path/to/db.sqlite3 | sqlite::memory:) (env KUBECONFIGURE_DB_URL)")
	fs.String(KeyLogFormat, "human", "Log format (human|text|json) (env KUBECONFIGURE_LOG_FORMAT)")
	fs.String(KeyLogLevel, "INFO", "Log level (DEBUG|INFO|WARN|ERROR) (env KUBECONFIGURE_LOG_LEVEL)")
	fs.String(KeyLogOutput, "-", "Log output (- for stderr, none, auto, or a file path) (env KUBECONFIGURE_LOG_OUTPUT)")
	fs.String(KeyLogDir, "", "Directory for generated and relative log files (env KUBECONFIGURE_LOG_DIR)")
	fs.Int(KeyLogRetentionDays, 0, "Days to keep generated log files, 0 for the default (env KUBECONFIGURE_LOG_RETENTION_DAYS)")
	fs.String(KeyKubeconfig, "", "Kubeconfig for endpoints without their own (env KUBECONFIGURE_KUBECONFIG)")
	fs.Int(KeyConcurrency, 8, "Maximum parallel Kubernetes API requests (env KUBECONFIGURE_CONCURRENCY)")
	fs.BoolP(KeyAssumeYes, "y", false, "Answer yes to confirmation prompts (env KUBECONFIGURE_YES)")
	for _, k := range []string{KeyDBURL, KeyLogFormat, KeyLogLevel, KeyLogOutput, KeyLogDir, KeyLogRetentionDays, KeyKubeconfig, KeyConcurrency, KeyAssumeYes} {
		_ = v.BindPFlag(k, fs.Lookup(k))
	}
}

// Load resolves and validates the settings held by v.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		DBURL:            v.GetString(KeyDBURL),
		LogFormat:        v.GetString(KeyLogFormat),
		LogLevel:         v.GetString(KeyLogLevel),
		LogOutput:        v.GetString(KeyLogOutput),
		LogDir:           v.GetString(KeyLogDir),
		LogRetentionDays: v.GetInt(KeyLogRetentionDays),
		Kubeconfig:       v.GetString(KeyKubeconfig),
		Concurrency:      v.GetInt(KeyConcurrency),
		AssumeYes:        v.GetBool(KeyAssumeYes),
	}
	if s.DBURL == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyDBURL)
	}
	if s.Concurrency < 1 {
		return nil, fmt.Errorf("%s must be at least 1, got %d", KeyConcurrency, s.Concurrency)
	}
	return s, nil
}
