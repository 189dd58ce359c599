package services

import (
	"sort"
	"time"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure StatsService implements the interface.
var _ driving.StatsService = (*StatsService)(nil)

// StatsService computes the four trip reports.
//
// Modes break ties on the smallest value: months and weekdays compare
// by English name, hours and birth years numerically, and station names
// in byte order. Frequency breakdowns are
// sorted by descending count, ties keeping first-seen order.
type StatsService struct {
	now func() time.Time
}

// NewStatsService creates a new statistics service.
func NewStatsService() *StatsService {
	return &StatsService{now: time.Now}
}

// TimeOfTravel reports the most common month, weekday and start hour.
func (s *StatsService) TimeOfTravel(table *domain.TripTable) domain.TimeReport {
	start := s.now()

	months := newCounter[time.Month]()
	days := newCounter[time.Weekday]()
	hours := newCounter[int]()
	for i := range records(table) {
		r := &table.Records[i]
		months.add(r.Month)
		days.add(r.Weekday)
		hours.add(r.Hour)
	}

	report := domain.TimeReport{
		Rows:  table.Len(),
		Month: months.mode(func(a, b time.Month) bool { return a.String() < b.String() }),
		Day:   days.mode(func(a, b time.Weekday) bool { return a.String() < b.String() }),
		Hour:  hours.mode(func(a, b int) bool { return a < b }),
	}
	report.Elapsed = s.now().Sub(start)
	logger.Debug("Time report over %d rows took %s", report.Rows, report.Elapsed)
	return report
}

// Stations reports the most common start, end and start/end pair.
func (s *StatsService) Stations(table *domain.TripTable) domain.StationReport {
	start := s.now()

	starts := newCounter[string]()
	ends := newCounter[string]()
	pairs := newCounter[domain.StationPair]()
	for i := range records(table) {
		r := &table.Records[i]
		starts.add(r.StartStation)
		ends.add(r.EndStation)
		pairs.add(domain.StationPair{Start: r.StartStation, End: r.EndStation})
	}

	byName := func(a, b string) bool { return a < b }
	report := domain.StationReport{
		Rows:  table.Len(),
		Start: starts.mode(byName),
		End:   ends.mode(byName),
		Trip: pairs.mode(func(a, b domain.StationPair) bool {
			if a.Start != b.Start {
				return a.Start < b.Start
			}
			return a.End < b.End
		}),
	}
	report.Elapsed = s.now().Sub(start)
	logger.Debug("Station report over %d rows took %s", report.Rows, report.Elapsed)
	return report
}

// Durations reports total and mean trip duration.
// The mean of an empty table is zero.
func (s *StatsService) Durations(table *domain.TripTable) domain.DurationReport {
	start := s.now()

	var total float64
	for i := range records(table) {
		total += table.Records[i].Duration
	}

	report := domain.DurationReport{
		Rows:  table.Len(),
		Total: total,
	}
	if report.Rows > 0 {
		report.Mean = total / float64(report.Rows)
	}
	report.Elapsed = s.now().Sub(start)
	logger.Debug("Duration report over %d rows took %s", report.Rows, report.Elapsed)
	return report
}

// Users reports user type, gender and birth year breakdowns.
func (s *StatsService) Users(table *domain.TripTable) domain.UserReport {
	start := s.now()

	report := domain.UserReport{Rows: table.Len()}
	if table != nil {
		report.HasGender = table.Schema.HasGender
	}

	userTypes := newCounter[string]()
	genders := newCounter[string]()
	years := newCounter[int]()
	var earliest, latest int
	for i := range records(table) {
		r := &table.Records[i]

		userType := r.UserType
		if userType == "" {
			userType = domain.UnknownUserType
		}
		userTypes.add(userType)

		if report.HasGender {
			if r.Gender == "" {
				report.GenderMissing++
			} else {
				genders.add(r.Gender)
			}
		}

		if table.Schema.HasBirthYear && r.BirthYear != nil {
			y := *r.BirthYear
			if years.total == 0 || y < earliest {
				earliest = y
			}
			if years.total == 0 || y > latest {
				latest = y
			}
			years.add(y)
		}
	}

	report.UserTypes = ranked(userTypes)
	if report.HasGender {
		report.Genders = ranked(genders)
	}
	if years.total > 0 {
		report.BirthYears = &domain.BirthYearStats{
			Earliest:   earliest,
			MostRecent: latest,
			MostCommon: years.mode(func(a, b int) bool { return a < b }).Value,
		}
	}

	report.Elapsed = s.now().Sub(start)
	logger.Debug("User report over %d rows took %s", report.Rows, report.Elapsed)
	return report
}

// records returns the table's records, or nil for a nil table.
func records(table *domain.TripTable) []domain.TripRecord {
	if table == nil {
		return nil
	}
	return table.Records
}

// counter tallies values, remembering the order they were first seen.
type counter[T comparable] struct {
	counts map[T]int
	order  []T
	total  int
}

func newCounter[T comparable]() *counter[T] {
	return &counter[T]{counts: make(map[T]int)}
}

func (c *counter[T]) add(v T) {
	if _, seen := c.counts[v]; !seen {
		c.order = append(c.order, v)
	}
	c.counts[v]++
	c.total++
}

// mode returns the most frequent value, the smallest per less on ties.
func (c *counter[T]) mode(less func(a, b T) bool) domain.Mode[T] {
	var best domain.Mode[T]
	for _, v := range c.order {
		n := c.counts[v]
		if n > best.Count || (n == best.Count && less(v, best.Value)) {
			best = domain.Mode[T]{Value: v, Count: n}
		}
	}
	return best
}

// ranked returns values by descending count, ties in first-seen order.
func ranked(c *counter[string]) []domain.ValueCount {
	values := append([]string(nil), c.order...)
	sort.SliceStable(values, func(i, j int) bool {
		return c.counts[values[i]] > c.counts[values[j]]
	})

	out := make([]domain.ValueCount, 0, len(values))
	for _, v := range values {
		out = append(out, domain.ValueCount{Value: v, Count: c.counts[v]})
	}
	return out
}
