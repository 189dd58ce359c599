package cli

import (
	"fmt"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/storage/csvfile"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/core/services"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// annotationNoServices marks commands that run without loading settings.
const annotationNoServices = "bikeshare/no-services"

// Services used by commands. Built from flags and config by setupServices,
// or injected with SetServices.
var (
	tripService     driving.TripService
	statsService    driving.StatsService
	settingsService driving.SettingsService
	importService   driving.ImportService

	// appSettings are the effective settings, flags applied.
	appSettings *domain.AppSettings

	servicesInjected bool

	// closers release resources opened by setupServices.
	closers []func() error
)

// SetServices injects services, replacing the file-backed defaults.
func SetServices(trips driving.TripService, stats driving.StatsService, settings driving.SettingsService) {
	tripService = trips
	statsService = stats
	settingsService = settings
	servicesInjected = true
}

// SetImportService injects the import service used by the import command.
func SetImportService(svc driving.ImportService) {
	importService = svc
}

// setupServices resolves settings and builds any service not injected.
func setupServices() error {
	if !servicesInjected {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("open config: %w", err)
		}
		logger.Debug("Config file: %s", store.Path())
		settingsService = services.NewSettingsService(store)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	if dataDir != "" {
		settings.Data.Dir = dataDir
	}
	if err := settingsService.Validate(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	appSettings = settings
	logger.Debug("Data dir: %s, backend: %s, page size: %d, legacy skip: %t",
		settings.Data.Dir, settings.Data.Backend, settings.Viewer.PageSize, settings.Viewer.LegacySkip)

	if !servicesInjected {
		source, err := tripSource(settings.Data)
		if err != nil {
			return err
		}
		tripService = services.NewTripService(source)
		statsService = services.NewStatsService()
	}
	return nil
}

// tripSource returns the trip source selected by the data backend.
func tripSource(data domain.DataSettings) (driven.TripSource, error) {
	if data.Backend == domain.BackendSQLite {
		return openTripStore(data)
	}
	return csvfile.NewSource(data), nil
}

// openTripStore opens the trip database and schedules it for closing.
func openTripStore(data domain.DataSettings) (*sqlite.Store, error) {
	store, err := sqlite.NewStore(data.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("open trip database: %w", err)
	}
	logger.Debug("Trip database: %s", store.Path())
	closers = append(closers, store.Close)
	return store, nil
}

// closeServices releases everything opened by setupServices.
func closeServices() {
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			logger.Warn("Closing resource: %v", err)
		}
	}
	closers = nil
}
