package driving

import "github.com/custodia-labs/bikeshare-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Validate checks settings for out-of-range or missing values.
	Validate(settings *domain.AppSettings) error

	// SetDataDir persists the directory holding city files.
	SetDataDir(dir string) error

	// SetCityFile persists a file name override for a city.
	SetCityFile(city domain.City, file string) error

	// SetBackend persists the trip storage backend ("csv" or "sqlite").
	SetBackend(backend string) error

	// SetDatabase persists the SQLite database path.
	SetDatabase(path string) error

	// SetPageSize persists the row viewer page size.
	SetPageSize(size int) error

	// SetLegacySkip persists the row viewer legacy skip flag.
	SetLegacySkip(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
