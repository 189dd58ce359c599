// Package cli provides the command-line interface for bikeshare.
// It implements a driving adapter over the core services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// version is set at build time.
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
	dataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bikeshare trip data",
	Long: `Bikeshare loads trip records for Chicago, New York City or Washington,
filters them by month and day of week, and reports the most common travel
times, the most popular stations, trip durations and rider demographics.

Run without a subcommand to start the interactive session. Trip files are
read from the data directory (--data-dir, or data.dir in settings).`,
	SilenceUsage:      true,
	PersistentPreRunE: setupRoot,
	RunE:              runExplore,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml (default ~/.bikeshare)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the city CSV files")
}

// Execute runs the root command.
func Execute() error {
	defer closeServices()
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

func setupRoot(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)
	if cmd.Annotations[annotationNoServices] != "" {
		return nil
	}
	return setupServices()
}
