package domain

import (
	"fmt"
	"strings"
	"time"
)

// FilterAll is the keyword that disables a month or day filter.
const FilterAll = "all"

// AnyMonth and AnyDay mark a Selection component as unfiltered.
const (
	AnyMonth time.Month   = 0
	AnyDay   time.Weekday = -1
)

// Selection is the month and weekday filter applied to a trip table.
type Selection struct {
	Month time.Month
	Day   time.Weekday
}

// AllTrips returns a selection that keeps every trip.
func AllTrips() Selection {
	return Selection{Month: AnyMonth, Day: AnyDay}
}

// NewSelection parses month and day input into a selection.
func NewSelection(month, day string) (Selection, error) {
	m, err := ParseMonth(month)
	if err != nil {
		return Selection{}, err
	}
	d, err := ParseDay(day)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Month: m, Day: d}, nil
}

// Months returns the twelve calendar months in order.
func Months() []time.Month {
	months := make([]time.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, m)
	}
	return months
}

// Weekdays returns the days of the week starting on Monday.
func Weekdays() []time.Weekday {
	return []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
}

// ParseMonth resolves a full month name, or "all", ignoring case.
func ParseMonth(input string) (time.Month, error) {
	s := strings.TrimSpace(input)
	if strings.EqualFold(s, FilterAll) {
		return AnyMonth, nil
	}
	for _, m := range Months() {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return AnyMonth, fmt.Errorf("%w: unknown month %q", ErrInvalidInput, input)
}

// ParseDay resolves a full weekday name, or "all", ignoring case.
func ParseDay(input string) (time.Weekday, error) {
	s := strings.TrimSpace(input)
	if strings.EqualFold(s, FilterAll) {
		return AnyDay, nil
	}
	for _, d := range Weekdays() {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return AnyDay, fmt.Errorf("%w: unknown day %q", ErrInvalidInput, input)
}

// Matches reports whether a trip satisfies both components of the selection.
func (s Selection) Matches(r *TripRecord) bool {
	if s.Month != AnyMonth && r.Month != s.Month {
		return false
	}
	if s.Day != AnyDay && r.Weekday != s.Day {
		return false
	}
	return true
}

// WithDay returns a copy of s with its day component replaced.
func (s Selection) WithDay(d time.Weekday) Selection {
	s.Day = d
	return s
}

// WithMonth returns a copy of s with its month component replaced.
func (s Selection) WithMonth(m time.Month) Selection {
	s.Month = m
	return s
}

// MonthLabel returns the month name, or "all".
func (s Selection) MonthLabel() string {
	if s.Month == AnyMonth {
		return FilterAll
	}
	return s.Month.String()
}

// DayLabel returns the weekday name, or "all".
func (s Selection) DayLabel() string {
	if s.Day == AnyDay {
		return FilterAll
	}
	return s.Day.String()
}

// String returns a compact description such as "month=May day=all".
func (s Selection) String() string {
	return "month=" + s.MonthLabel() + " day=" + s.DayLabel()
}
