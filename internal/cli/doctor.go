package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hindu-agent/setupctl/internal/bootstrap"
)

// newDoctorCommand creates the "doctor" subcommand that runs the read-only
// preflight checks: interpreter version and optional service probes. It
// writes nothing to disk.
func newDoctorCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run environment preflight checks without changing anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			b := bootstrap.New(cfg, logger)
			report := bootstrap.NewRunner(logger).Run(cmd.Context(), b.DoctorSteps())
			bootstrap.PrintSummary(cmd.OutOrStdout(), cfg, report)

			if failed := report.FirstFatal(); failed != nil {
				return fmt.Errorf("check %q failed: %s", failed.Name, failed.Detail)
			}

			logger.Info("doctor checks completed")
			return nil
		},
	}
}
