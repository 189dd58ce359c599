package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change where trip files are read from and how the row viewer pages.

Settings are stored in config.toml in the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting and save it to config.toml.

Keys:
  data.dir              directory holding the city CSV files
  data.files.<city>     file name for a city (chicago, new_york_city, washington)
  data.backend          where trips are read from (csv or sqlite)
  data.database         SQLite trip database path (default <data.dir>/bikeshare.db)
  viewer.page_size      rows per page in the row viewer (1-100)
  viewer.legacy_skip    show one row fewer than the page size (true/false)`,
	Example: `  bikeshare settings set data.dir ~/data/bikeshare
  bikeshare settings set data.files.new_york_city citibike-2017.csv
  bikeshare settings set viewer.page_size 10
  bikeshare settings set data.backend sqlite`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil || appSettings == nil {
		return errServicesNotConfigured
	}
	settings := appSettings

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Data]")
	cmd.Printf("  Directory: %s\n", settings.Data.Dir)
	for _, c := range domain.AllCities() {
		cmd.Printf("  %s: %s\n", c.Description(), settings.Data.PathFor(c))
	}
	cmd.Printf("  Backend: %s\n", settings.Data.Backend)
	cmd.Printf("  Database: %s\n", settings.Data.DatabasePath())
	cmd.Println()

	cmd.Println("[Viewer]")
	cmd.Printf("  Page size: %d\n", settings.Viewer.PageSize)
	cmd.Printf("  Rows shown per page: %d\n", settings.Viewer.Shown())
	cmd.Printf("  Legacy skip: %s\n", yesNo(settings.Viewer.LegacySkip))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errServicesNotConfigured
	}

	key, value := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
	if err := applySetting(key, value); err != nil {
		return err
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

// applySetting routes a key to the matching settings service call.
func applySetting(key, value string) error {
	switch {
	case key == "data.dir":
		return settingsService.SetDataDir(value)

	case key == "data.backend":
		return settingsService.SetBackend(value)

	case key == "data.database":
		return settingsService.SetDatabase(value)

	case strings.HasPrefix(key, "data.files."):
		cityKey := strings.TrimPrefix(key, "data.files.")
		for _, c := range domain.AllCities() {
			if c.Key() == cityKey {
				return settingsService.SetCityFile(c, value)
			}
		}
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedCity, cityKey)

	case key == "viewer.page_size":
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: page size must be a number", domain.ErrInvalidInput)
		}
		return settingsService.SetPageSize(size)

	case key == "viewer.legacy_skip":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: legacy skip must be true or false", domain.ErrInvalidInput)
		}
		return settingsService.SetLegacySkip(enabled)

	default:
		return fmt.Errorf("%w: unknown setting %q (known: %s)",
			domain.ErrInvalidInput, key, strings.Join(settingKeys(), ", "))
	}
}

func settingKeys() []string {
	keys := []string{"data.dir", "data.backend", "data.database", "viewer.page_size", "viewer.legacy_skip"}
	for _, c := range domain.AllCities() {
		keys = append(keys, "data.files."+c.Key())
	}
	sort.Strings(keys)
	return keys
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
