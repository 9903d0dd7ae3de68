package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/starterkit-dev/typescript-starter/internal/branding"
	"github.com/starterkit-dev/typescript-starter/internal/config"
	"github.com/starterkit-dev/typescript-starter/internal/logging"
	"github.com/starterkit-dev/typescript-starter/internal/starter"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagVerbose    bool
	flagQuiet      bool
	flagConfigPath string
	starterFlags   *starter.FlagValues
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [project-name]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new TypeScript library from the typescript-starter template.

Pass the project name and any feature flags to run non-interactively, or run it
without a name in a terminal to answer a few questions instead.

Examples:
  typescript-starter my-lib
  typescript-starter my-lib --yarn --node --strict --no-install
  typescript-starter @scope/my-lib -d "does one thing well"`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(flagVerbose, flagQuiet)
	},
	RunE: runCreate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only show errors")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Config file (default ~/"+branding.HomeDir()+"/config.yaml)")

	starterFlags = starter.BindFlags(rootCmd.Flags())
	rootCmd.MarkFlagsMutuallyExclusive("yarn", "npm")
	for _, f := range starter.AllFlags {
		rootCmd.MarkFlagsMutuallyExclusive(string(f), "no-"+string(f))
	}
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

// loadConfig opens the config file named by --config, or the default one.
func loadConfig() (*config.Store, error) {
	path := flagConfigPath
	if path == "" {
		path = config.FilePath()
	}
	return config.Load(path)
}
