package cli

import (
	envparse "github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// rootEnv defines root CLI defaults sourced from SETUPCTL_* env vars.
type rootEnv struct {
	// ConfigPath is the manifest path from SETUPCTL_CONFIG.
	ConfigPath string `env:"SETUPCTL_CONFIG"`
	// LogLevel is the logging level from SETUPCTL_LOG_LEVEL.
	LogLevel string `env:"SETUPCTL_LOG_LEVEL"`
	// Yes makes every prompt affirmative, from SETUPCTL_YES.
	Yes bool `env:"SETUPCTL_YES"`
	// NoInput makes every prompt negative, from SETUPCTL_NO_INPUT.
	NoInput bool `env:"SETUPCTL_NO_INPUT"`
}

// applyEnvDefaults fills options from SETUPCTL_* variables for every flag the
// operator did not set explicitly. Flags always win over the environment.
func applyEnvDefaults(cmd *cobra.Command, opts *Options) error {
	var envVars rootEnv
	if err := envparse.Parse(&envVars); err != nil {
		return err
	}

	if !cmd.Flags().Changed("config") && envVars.ConfigPath != "" {
		opts.ConfigPath = envVars.ConfigPath
	}
	if !cmd.Flags().Changed("log-level") && envVars.LogLevel != "" {
		if err := cmd.Flags().Set("log-level", envVars.LogLevel); err != nil {
			return err
		}
	}
	if !cmd.Flags().Changed("yes") && envVars.Yes {
		opts.Yes = true
	}
	if !cmd.Flags().Changed("no-input") && envVars.NoInput {
		opts.NoInput = true
	}
	return nil
}
