package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDataDir          = "data.dir"
	keyDataFilesPrefix  = "data.files."
	keyDataBackend      = "data.backend"
	keyDataDatabase     = "data.database"
	keyViewerPageSize   = "viewer.page_size"
	keyViewerLegacySkip = "viewer.legacy_skip"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	validate    *validator.Validate
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		validate:    validator.New(),
	}
}

// Get retrieves current application settings.
// Unset keys take their default value.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	files, err := s.getCityFiles()
	if err != nil {
		return nil, err
	}

	settings := &domain.AppSettings{
		Data: domain.DataSettings{
			Dir:      s.getString(keyDataDir, defaults.Data.Dir),
			Files:    files,
			Backend:  s.getString(keyDataBackend, defaults.Data.Backend),
			Database: s.getString(keyDataDatabase, defaults.Data.Database),
		},
		Viewer: domain.ViewerSettings{
			PageSize:   s.getInt(keyViewerPageSize, defaults.Viewer.PageSize),
			LegacySkip: s.getBool(keyViewerLegacySkip, defaults.Viewer.LegacySkip),
		},
	}

	return settings, nil
}

// Validate checks settings for out-of-range or missing values.
func (s *SettingsService) Validate(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if err := s.validate.Struct(settings.Data); err != nil {
		return fmt.Errorf("%w: data: %w", domain.ErrInvalidInput, err)
	}
	if err := s.validate.Struct(settings.Viewer); err != nil {
		return fmt.Errorf("%w: viewer: %w", domain.ErrInvalidInput, err)
	}
	for city := range settings.Data.Files {
		if !city.IsValid() {
			return fmt.Errorf("%w: data.files: %q", domain.ErrUnsupportedCity, city)
		}
	}
	return nil
}

// SetDataDir persists the directory holding city files.
func (s *SettingsService) SetDataDir(dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return fmt.Errorf("%w: data directory cannot be empty", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyDataDir, dir); err != nil {
		return fmt.Errorf("save data dir: %w", err)
	}
	return nil
}

// SetCityFile persists a file name override for a city.
func (s *SettingsService) SetCityFile(city domain.City, file string) error {
	if !city.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedCity, city)
	}
	if err := s.configStore.Set(keyDataFilesPrefix+city.Key(), strings.TrimSpace(file)); err != nil {
		return fmt.Errorf("save file for %s: %w", city, err)
	}
	return nil
}

// SetBackend persists the trip storage backend.
func (s *SettingsService) SetBackend(backend string) error {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if err := s.validate.Var(backend, "oneof=csv sqlite"); err != nil {
		return fmt.Errorf("%w: backend must be %s or %s", domain.ErrInvalidInput, domain.BackendCSV, domain.BackendSQLite)
	}
	if err := s.configStore.Set(keyDataBackend, backend); err != nil {
		return fmt.Errorf("save backend: %w", err)
	}
	return nil
}

// SetDatabase persists the SQLite database path.
func (s *SettingsService) SetDatabase(path string) error {
	if err := s.configStore.Set(keyDataDatabase, strings.TrimSpace(path)); err != nil {
		return fmt.Errorf("save database path: %w", err)
	}
	return nil
}

// SetPageSize persists the row viewer page size.
func (s *SettingsService) SetPageSize(size int) error {
	viewer := domain.ViewerSettings{PageSize: size}
	if err := s.validate.Struct(viewer); err != nil {
		return fmt.Errorf("%w: page size must be between 1 and %d", domain.ErrInvalidInput, domain.MaxPageSize)
	}
	if err := s.configStore.Set(keyViewerPageSize, size); err != nil {
		return fmt.Errorf("save page size: %w", err)
	}
	return nil
}

// SetLegacySkip persists the row viewer legacy skip flag.
func (s *SettingsService) SetLegacySkip(enabled bool) error {
	if err := s.configStore.Set(keyViewerLegacySkip, enabled); err != nil {
		return fmt.Errorf("save legacy skip: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// getCityFiles reads data.files.<city_key> overrides.
func (s *SettingsService) getCityFiles() (map[domain.City]string, error) {
	byKey := make(map[string]domain.City)
	for _, c := range domain.AllCities() {
		byKey[c.Key()] = c
	}

	files := make(map[domain.City]string)
	for _, key := range s.configStore.Keys(keyDataFilesPrefix) {
		cityKey := strings.TrimPrefix(key, keyDataFilesPrefix)
		city, ok := byKey[cityKey]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedCity, key)
		}
		if file := s.configStore.GetString(key); file != "" {
			files[city] = file
		}
	}
	return files, nil
}
