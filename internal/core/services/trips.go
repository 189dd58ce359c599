package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure TripService implements the interface.
var _ driving.TripService = (*TripService)(nil)

// TripService loads city tables from a trip source and filters them.
type TripService struct {
	source driven.TripSource
}

// NewTripService creates a new trip service.
func NewTripService(source driven.TripSource) *TripService {
	return &TripService{source: source}
}

// Load reads the full trip table for a city.
func (s *TripService) Load(ctx context.Context, city domain.City) (*domain.TripTable, error) {
	if !city.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedCity, city)
	}

	table, err := s.source.Load(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", city, err)
	}

	logger.Debug("Loaded %d trips for %s", table.Len(), city)
	return table, nil
}

// Filter returns the trips of table matching sel, in table order.
func (s *TripService) Filter(table *domain.TripTable, sel domain.Selection) *domain.TripTable {
	out := table.Filter(sel)
	logger.Debug("Filter %s kept %d of %d trips", sel, out.Len(), table.Len())
	return out
}

// Explore loads a city and applies sel in one step.
func (s *TripService) Explore(
	ctx context.Context, city domain.City, sel domain.Selection,
) (*domain.TripTable, error) {
	table, err := s.Load(ctx, city)
	if err != nil {
		return nil, err
	}
	return s.Filter(table, sel), nil
}
