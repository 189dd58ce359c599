package driving

import "github.com/custodia-labs/bikeshare-cli/internal/core/domain"

// StatsService computes descriptive statistics over a trip table.
// Each report is independent of the others and never mutates the table.
type StatsService interface {
	// TimeOfTravel reports the most common month, weekday and start hour.
	TimeOfTravel(table *domain.TripTable) domain.TimeReport

	// Stations reports the most common start, end and start/end pair.
	Stations(table *domain.TripTable) domain.StationReport

	// Durations reports total and mean trip duration.
	Durations(table *domain.TripTable) domain.DurationReport

	// Users reports user type, gender and birth year breakdowns.
	Users(table *domain.TripTable) domain.UserReport
}
