package cli

import (
	"github.com/spf13/cobra"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Start the interactive session",
	Long: `Prompt for a city, month and day of week, print the trip reports and
offer to page through the matching rows. Answer "yes" to the restart
question to explore again.

This is what bikeshare runs when no subcommand is given.`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, _ []string) error {
	if tripService == nil || statsService == nil || appSettings == nil {
		return errServicesNotConfigured
	}

	session := NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), tripService, statsService, appSettings.Viewer)
	return session.Run(cmd.Context())
}
