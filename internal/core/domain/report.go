package domain

import (
	"fmt"
	"math"
	"time"
)

// UnknownUserType labels trips whose user type cell is blank.
const UnknownUserType = "Unknown"

// Mode is the most frequent value of a column and how often it occurs.
// Count is zero when the input table was empty.
type Mode[T comparable] struct {
	Value T
	Count int
}

// Found returns true if the mode was computed over at least one row.
func (m Mode[T]) Found() bool {
	return m.Count > 0
}

// ValueCount is one entry of a frequency breakdown.
type ValueCount struct {
	Value string
	Count int
}

// TimeReport holds the most frequent times of travel.
type TimeReport struct {
	Rows    int
	Month   Mode[time.Month]
	Day     Mode[time.Weekday]
	Hour    Mode[int]
	Elapsed time.Duration
}

// StationPair is a (start, end) combination of stations.
type StationPair struct {
	Start string
	End   string
}

// String joins the two station names for display.
func (p StationPair) String() string {
	return p.Start + " and " + p.End
}

// StationReport holds the most popular stations and trip.
type StationReport struct {
	Rows    int
	Start   Mode[string]
	End     Mode[string]
	Trip    Mode[StationPair]
	Elapsed time.Duration
}

// Clock is a duration split into whole hours, whole minutes and rounded seconds.
type Clock struct {
	Hours   int
	Minutes int
	Seconds int
}

// SplitDuration decomposes seconds as h = total // 3600,
// m = (total % 3600) // 60 and s = round(total % 60).
// Seconds are rounded half to even and never carried into minutes.
func SplitDuration(total float64) Clock {
	rem := floorMod(total, 3600)
	return Clock{
		Hours:   int(math.Floor(total / 3600)),
		Minutes: int(math.Floor(rem / 60)),
		Seconds: int(math.RoundToEven(floorMod(rem, 60))),
	}
}

func floorMod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

// TotalSeconds returns h*3600 + m*60 + s.
func (c Clock) TotalSeconds() int {
	return c.Hours*3600 + c.Minutes*60 + c.Seconds
}

// String formats the clock as "1h 2m 0s".
func (c Clock) String() string {
	return fmt.Sprintf("%dh %dm %ds", c.Hours, c.Minutes, c.Seconds)
}

// DurationReport holds total and mean trip duration in seconds.
type DurationReport struct {
	Rows    int
	Total   float64
	Mean    float64
	Elapsed time.Duration
}

// TotalClock returns the total duration split into h/m/s.
func (r DurationReport) TotalClock() Clock {
	return SplitDuration(r.Total)
}

// MeanClock returns the mean duration split into h/m/s.
func (r DurationReport) MeanClock() Clock {
	return SplitDuration(r.Mean)
}

// BirthYearStats summarises rider birth years.
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserReport holds rider demographics.
type UserReport struct {
	Rows int

	// UserTypes always sums to Rows; blank cells count as UnknownUserType.
	UserTypes []ValueCount

	// HasGender is false when the city provides no gender column.
	HasGender bool

	// Genders excludes blank cells, which are counted in GenderMissing.
	Genders       []ValueCount
	GenderMissing int

	// BirthYears is nil when the city provides no birth year column
	// or no row carries a birth year.
	BirthYears *BirthYearStats

	Elapsed time.Duration
}
