package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List supported cities and their data files",
	RunE:  runCities,
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}

func runCities(cmd *cobra.Command, _ []string) error {
	if appSettings == nil {
		return errServicesNotConfigured
	}

	for _, c := range domain.AllCities() {
		path := appSettings.Data.PathFor(c)
		cmd.Printf("  %-14s %s (%s)\n", c, path, fileStatus(path))
	}
	return nil
}

func fileStatus(path string) string {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "missing"
	case err != nil:
		return "unreadable"
	case info.IsDir():
		return "not a file"
	default:
		return "available"
	}
}
