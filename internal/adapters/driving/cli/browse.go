package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

var (
	browseCity  string
	browseMonth string
	browseDay   string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Page through matching trips full screen",
	Long: `Open a full-screen browser over the trips matching the selection.

Controls:
  n/space  - Next page
  g        - First page
  ↑/k, ↓/j - Move between rows
  ?        - Toggle help
  q        - Quit`,
	RunE: runBrowse,
}

// startBrowser runs the browser program. Replaced in tests.
var startBrowser = func(app *tui.App) error {
	return app.Run()
}

func init() {
	browseCmd.Flags().StringVarP(&browseCity, "city", "c", "", "city to browse (chicago, new york city, washington)")
	browseCmd.Flags().StringVarP(&browseMonth, "month", "m", domain.FilterAll, "month name or \"all\"")
	browseCmd.Flags().StringVarP(&browseDay, "day", "d", domain.FilterAll, "day of week or \"all\"")
	_ = browseCmd.MarkFlagRequired("city")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) (err error) {
	// A panic in the program is reported with its stack and fails the command.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Panic in browser: %v\n", r)
			fmt.Fprintf(cmd.ErrOrStderr(), "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("browser panicked: %v", r)
		}
	}()

	if tripService == nil || appSettings == nil {
		return errServicesNotConfigured
	}

	city, sel, err := parseSelection(browseCity, browseMonth, browseDay)
	if err != nil {
		return err
	}

	table, err := tripService.Explore(cmd.Context(), city, sel)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(table, appSettings.Viewer, fmt.Sprintf("%s %s", city, sel))
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}

	if err := startBrowser(app); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
