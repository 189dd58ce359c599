package domain

import "time"

// Column names recognised in city CSV files.
const (
	ColumnStartTime    = "Start Time"
	ColumnEndTime      = "End Time"
	ColumnTripDuration = "Trip Duration"
	ColumnStartStation = "Start Station"
	ColumnEndStation   = "End Station"
	ColumnUserType     = "User Type"
	ColumnGender       = "Gender"
	ColumnBirthYear    = "Birth Year"
)

// RequiredColumns returns the columns every city file must provide.
func RequiredColumns() []string {
	return []string{
		ColumnStartTime,
		ColumnStartStation,
		ColumnEndStation,
		ColumnTripDuration,
		ColumnUserType,
	}
}

// TripRecord is a single bikeshare trip.
type TripRecord struct {
	// StartTime is when the trip began.
	StartTime time.Time

	// StartStation is the name of the station the trip began at.
	StartStation string

	// EndStation is the name of the station the trip ended at.
	EndStation string

	// Duration is the trip length in seconds.
	Duration float64

	// UserType is the rider category, e.g. "Subscriber" or "Customer".
	UserType string

	// Gender is empty when the city has no gender column or the cell is blank.
	Gender string

	// BirthYear is nil when the city has no birth year column or the cell is blank.
	BirthYear *int

	// Month, Weekday and Hour are derived from StartTime once, at load time.
	Month   time.Month
	Weekday time.Weekday
	Hour    int

	// Raw holds the original CSV fields in header order.
	Raw []string
}

// Derive populates the calendar fields from StartTime.
func (r *TripRecord) Derive() {
	r.Month = r.StartTime.Month()
	r.Weekday = r.StartTime.Weekday()
	r.Hour = r.StartTime.Hour()
}

// Schema describes the columns a city file provides.
type Schema struct {
	// Columns is the CSV header in file order.
	Columns []string

	// HasGender is true when the file carries a gender column.
	HasGender bool

	// HasBirthYear is true when the file carries a birth year column.
	HasBirthYear bool
}

// TripTable is the ordered set of trips loaded for one city.
type TripTable struct {
	City    City
	Schema  Schema
	Records []TripRecord
}

// Len returns the number of trips in the table.
func (t *TripTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Filter returns a new table holding, in order, the trips that match sel.
// The receiver is not modified. A nil table filters to an empty table.
func (t *TripTable) Filter(sel Selection) *TripTable {
	if t == nil {
		return &TripTable{}
	}
	out := &TripTable{
		City:    t.City,
		Schema:  t.Schema,
		Records: make([]TripRecord, 0, len(t.Records)),
	}
	for i := range t.Records {
		if sel.Matches(&t.Records[i]) {
			out.Records = append(out.Records, t.Records[i])
		}
	}
	return out
}

// RowWindow is one page of raw trips shown by the row viewer.
type RowWindow struct {
	// Offset is the table index of the first row in Records.
	Offset int

	// Records are the trips displayed on this page.
	Records []TripRecord

	// Total is the number of rows in the table being paged.
	Total int
}

// Last returns the table index one past the final displayed row.
func (w RowWindow) Last() int {
	return w.Offset + len(w.Records)
}
