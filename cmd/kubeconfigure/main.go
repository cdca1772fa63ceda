package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/kompox/kubeconfigure/internal/logging"
	"github.com/kompox/kubeconfigure/internal/naming"
	"github.com/kompox/kubeconfigure/internal/settings"
)

type settingsKey struct{}

// settingsFromCmd returns the settings resolved in PersistentPreRunE.
func settingsFromCmd(cmd *cobra.Command) *settings.Settings {
	if s, ok := cmd.Context().Value(settingsKey{}).(*settings.Settings); ok && s != nil {
		return s
	}
	s, err := settings.Load(settings.New())
	if err != nil {
		return &settings.Settings{DBURL: settings.DefaultDBURL, Concurrency: 8}
	}
	return s
}

func newRootCmd() *cobra.Command {
	v := settings.New()
	var logOut *logging.Output

	cmd := &cobra.Command{
		Use:     "kubeconfigure",
		Short:   "Configure Kubernetes endpoint features",
		Long:    "Configure storage classes, ingress controllers and cluster features of registered Kubernetes endpoints.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	settings.AddFlags(v, cmd.PersistentFlags())

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		s, err := settings.Load(v)
		if err != nil {
			return err
		}
		cfg := &logging.LogConfig{
			Format:        s.LogFormat,
			Level:         s.LogLevel,
			Output:        s.LogOutput,
			Dir:           s.LogDir,
			RetentionDays: s.LogRetentionDays,
		}
		l, lf, err := logging.NewFromConfig(cfg)
		if err != nil {
			return err
		}
		logOut = lf
		if lf.Path != "" && s.LogDir != "" {
			if n, err := logging.PruneLogFiles(s.LogDir, s.LogRetentionDays); err == nil && n > 0 {
				l.Debug(c.Context(), "pruned old log files", "count", n)
			}
		}
		runID, err := naming.NewCompactID()
		if err != nil {
			return err
		}
		l = l.With("runId", runID)
		ctx := logging.WithLogger(c.Context(), l)
		ctx = context.WithValue(ctx, settingsKey{}, s)
		c.SetContext(ctx)
		quietKlog()
		return nil
	}
	cmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		return logOut.Close()
	}

	// Add subcommands
	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdEndpoint())
	cmd.AddCommand(newCmdConfigure())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
