// Package cli defines the command-line interface for setupctl.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hindu-agent/setupctl/internal/bootstrap"
	"github.com/hindu-agent/setupctl/internal/config"
	"github.com/hindu-agent/setupctl/internal/logging"
)

const (
	// defaultConfigPath is the default path to the setup manifest. The file
	// is optional; built-in defaults apply when it is absent.
	defaultConfigPath = "setup.yaml"
)

// Options stores global CLI options shared between commands.
type Options struct {
	ConfigPath string
	LogLevel   logging.Level
	Yes        bool
	NoInput    bool
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		ConfigPath: defaultConfigPath,
		LogLevel:   logging.LevelInfo,
	}

	rootCmd := newRootCommand(rootOpts, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command. Running setupctl with no
// arguments executes the full bootstrap pipeline.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "setupctl",
		Short:        "setupctl bootstraps the WhatsApp Hindu Agent runtime",
		Long:         "setupctl prepares a local machine to run the WhatsApp Hindu Agent: it verifies the Python toolchain, provisions a virtual environment, installs dependencies, scaffolds directories, seeds .env and offers optional PostgreSQL/Redis setup.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyEnvDefaults(cmd, opts); err != nil {
				return err
			}
			level := logging.ParseLevel(cmd.Flag("log-level").Value.String())
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", defaultConfigPath, "Path to the setup.yaml manifest (optional)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&opts.Yes, "yes", "y", false, "Answer every confirmation prompt affirmatively")
	cmd.PersistentFlags().BoolVar(&opts.NoInput, "no-input", false, "Answer every confirmation prompt negatively (for CI)")

	cmd.AddCommand(
		newDoctorCommand(opts),
	)

	return cmd
}

// runSetup executes the full bootstrap pipeline and prints the summary.
func runSetup(cmd *cobra.Command, opts *Options) error {
	logger := LoggerFromContext(cmd.Context())

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	b := bootstrap.New(cfg, logger,
		bootstrap.WithConfirm(newConfirmer(cmd, opts)),
	)

	report := b.Run(cmd.Context())
	bootstrap.PrintSummary(cmd.OutOrStdout(), cfg, report)

	if failed := report.FirstFatal(); failed != nil {
		return fmt.Errorf("step %q failed: %s", failed.Name, failed.Detail)
	}
	return nil
}

// loadConfig loads the manifest. The default path is optional; a path the
// operator set explicitly must exist.
func loadConfig(cmd *cobra.Command, opts *Options) (*config.Config, error) {
	optional := !cmd.Flags().Changed("config") && opts.ConfigPath == defaultConfigPath
	return config.Load(opts.ConfigPath, optional)
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
