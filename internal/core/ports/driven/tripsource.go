package driven

import (
	"context"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// TripSource loads the trip records of a city.
type TripSource interface {
	// Load reads every trip for the city and returns a fresh table with
	// month, weekday and hour derived for each record.
	// A missing or unreadable backing store wraps domain.ErrDatasetUnavailable;
	// invalid contents wrap domain.ErrMalformedDataset.
	Load(ctx context.Context, city domain.City) (*domain.TripTable, error)
}

// TripStore persists trip tables so they can be loaded again later.
type TripStore interface {
	TripSource

	// Save replaces every stored trip of table.City with the trips of table.
	Save(ctx context.Context, table *domain.TripTable) error
}
