package driving

import (
	"context"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// TripService loads and narrows trip tables.
type TripService interface {
	// Load reads the full trip table for a city.
	Load(ctx context.Context, city domain.City) (*domain.TripTable, error)

	// Filter returns the trips of table matching sel, in table order.
	Filter(table *domain.TripTable, sel domain.Selection) *domain.TripTable

	// Explore loads a city and applies sel in one step.
	Explore(ctx context.Context, city domain.City, sel domain.Selection) (*domain.TripTable, error)
}
