package domain

import "path/filepath"

const unknownDescription = "Unknown"

// Trip storage backends.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// DefaultDatabaseName is the SQLite file created inside the data directory.
const DefaultDatabaseName = "bikeshare.db"

// Row viewer defaults.
const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// DataSettings locates the city trip files.
type DataSettings struct {
	// Dir is the directory holding the city CSV files.
	Dir string `validate:"required"`

	// Files overrides the default file name for a city.
	// Relative names are resolved against Dir.
	Files map[City]string

	// Backend selects where trips are loaded from: the CSV files or
	// the SQLite database filled by the import command.
	Backend string `validate:"oneof=csv sqlite"`

	// Database is the SQLite file path. Empty means DefaultDatabaseName
	// inside Dir; relative paths are resolved against Dir.
	Database string
}

// DatabasePath returns the SQLite database location.
func (d DataSettings) DatabasePath() string {
	name := d.Database
	if name == "" {
		name = DefaultDatabaseName
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Dir, name)
}

// PathFor returns the file path for a city's trip data.
func (d DataSettings) PathFor(c City) string {
	name := c.FileName()
	if override, ok := d.Files[c]; ok && override != "" {
		name = override
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Dir, name)
}

// ViewerSettings holds raw row viewer configuration.
type ViewerSettings struct {
	// PageSize is how far each page advances through the table.
	PageSize int `validate:"gte=1,lte=100"`

	// LegacySkip shows one row fewer than PageSize per page, so the
	// last row of every page is never displayed.
	LegacySkip bool
}

// Shown returns how many rows each page displays.
func (v ViewerSettings) Shown() int {
	if v.LegacySkip && v.PageSize > 1 {
		return v.PageSize - 1
	}
	return v.PageSize
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Data holds dataset location settings.
	Data DataSettings

	// Viewer holds row viewer settings.
	Viewer ViewerSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Trip files are read from the working directory.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Data: DataSettings{
			Dir:     ".",
			Files:   map[City]string{},
			Backend: BackendCSV,
		},
		Viewer: ViewerSettings{
			PageSize:   DefaultPageSize,
			LegacySkip: false,
		},
	}
}
