package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toolreg-labs/toolreg/internal/branding"
	"github.com/toolreg-labs/toolreg/internal/config"
	"github.com/toolreg-labs/toolreg/internal/logging"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/` + branding.HomeDir() + `/config.yaml.

Keys:
  verbosity              default diagnostic level
  tools_file             tools file loaded on every run
  programs.<name>.path   path override for a program
  programs.<name>.args   default arguments for a program

Every key can also be set from the environment, e.g. ` + branding.EnvVar("PROGRAMS_GHC_PATH") + `.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := checkConfigValue(key, value); err != nil {
			return err
		}
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		if err := cfg.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.Get(args[0]))
		return nil
	},
}

// checkConfigValue rejects values that would make every later run fail.
func checkConfigValue(key, value string) error {
	if key == config.KeyVerbosity {
		if _, err := logging.ParseVerbosity(value); err != nil {
			return err
		}
	}
	return nil
}
