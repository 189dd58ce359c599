package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure ImportService implements the interface.
var _ driving.ImportService = (*ImportService)(nil)

// ImportService copies trips from a source into a store.
type ImportService struct {
	from driven.TripSource
	to   driven.TripStore
}

// NewImportService creates a new import service.
func NewImportService(from driven.TripSource, to driven.TripStore) *ImportService {
	return &ImportService{from: from, to: to}
}

// Import reads a city's trips from the source and replaces the stored copy.
func (s *ImportService) Import(ctx context.Context, city domain.City) (int, error) {
	if !city.IsValid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedCity, city)
	}

	start := time.Now()
	table, err := s.from.Load(ctx, city)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", city, err)
	}
	if err := s.to.Save(ctx, table); err != nil {
		return 0, fmt.Errorf("store %s: %w", city, err)
	}

	logger.Info("Imported %d trips for %s in %s", table.Len(), city, time.Since(start))
	return table.Len(), nil
}
