package driving

import (
	"context"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// ImportService copies city trip files into the trip database.
type ImportService interface {
	// Import reads a city's trips from its source file, replaces the
	// stored copy and returns the number of trips written.
	Import(ctx context.Context, city domain.City) (int, error)
}
