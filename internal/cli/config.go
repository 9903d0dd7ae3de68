package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/starterkit-dev/typescript-starter/internal/config"
	"github.com/starterkit-dev/typescript-starter/internal/starter"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.typescript-starter/config.yaml.

Keys:
  registry              npm registry used for the version check
  github_api            GitHub API used to look up your username
  defaults.description  default package description
  defaults.runner       default package manager (npm or yarn)
  defaults.<feature>    default for a feature flag, e.g. defaults.strict true`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		// Reject bad defaults now rather than on the next run.
		if name, ok := strings.CutPrefix(key, config.KeyDefaultsPrefix); ok {
			if _, err := starter.BuiltinDefaults().Overlay(map[string]string{name: value}); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
		}

		store, err := loadConfig()
		if err != nil {
			return err
		}
		if err := store.Set(key, value); err != nil {
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
		store, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), store.Get(args[0]))
		return nil
	},
}
