// Package csvfile loads city trip tables from CSV files on disk.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.TripSource = (*Source)(nil)

// cancelCheckInterval is how many rows are decoded between context checks.
const cancelCheckInterval = 4096

// timestampLayouts are tried in order when parsing the start time column.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
}

// Source reads one CSV file per city from a data directory.
type Source struct {
	data domain.DataSettings
}

// NewSource creates a CSV trip source for the given data settings.
func NewSource(data domain.DataSettings) *Source {
	return &Source{data: data}
}

// Path returns the file a city is loaded from.
func (s *Source) Path(city domain.City) string {
	return s.data.PathFor(city)
}

// Load reads and decodes the city's CSV file.
func (s *Source) Load(ctx context.Context, city domain.City) (*domain.TripTable, error) {
	if !city.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedCity, city)
	}

	path := s.Path(city)
	logger.Debug("Opening %s for %s", path, city)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDatasetUnavailable, err)
	}
	defer f.Close()

	table, err := Decode(ctx, f, city)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	logger.Debug("Loaded %d trips from %s (gender=%t, birth_year=%t)",
		table.Len(), path, table.Schema.HasGender, table.Schema.HasBirthYear)
	return table, nil
}

// columns maps the recognised header names to their field index.
// Optional columns are -1 when absent.
type columns struct {
	startTime    int
	startStation int
	endStation   int
	duration     int
	userType     int
	gender       int
	birthYear    int
}

func indexColumns(header []string) (columns, error) {
	idx := func(col string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}

	for _, col := range domain.RequiredColumns() {
		if idx(col) < 0 {
			return columns{}, fmt.Errorf("%w: missing column %q", domain.ErrMalformedDataset, col)
		}
	}

	return columns{
		startTime:    idx(domain.ColumnStartTime),
		startStation: idx(domain.ColumnStartStation),
		endStation:   idx(domain.ColumnEndStation),
		duration:     idx(domain.ColumnTripDuration),
		userType:     idx(domain.ColumnUserType),
		gender:       idx(domain.ColumnGender),
		birthYear:    idx(domain.ColumnBirthYear),
	}, nil
}

// Decode reads a trip table from CSV. The first record is the header.
func Decode(ctx context.Context, r io.Reader, city domain.City) (*domain.TripTable, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", domain.ErrMalformedDataset)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedDataset, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	table := &domain.TripTable{
		City: city,
		Schema: domain.Schema{
			Columns:      header,
			HasGender:    cols.gender >= 0,
			HasBirthYear: cols.birthYear >= 0,
		},
	}

	for n := 0; ; n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrMalformedDataset, err)
		}

		line, _ := cr.FieldPos(0)
		rec, err := decodeRecord(fields, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", domain.ErrMalformedDataset, line, err)
		}
		table.Records = append(table.Records, rec)
	}

	return table, nil
}

func decodeRecord(fields []string, cols columns) (domain.TripRecord, error) {
	start, err := parseTimestamp(fields[cols.startTime])
	if err != nil {
		return domain.TripRecord{}, err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(fields[cols.duration]), 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return domain.TripRecord{}, fmt.Errorf("invalid %s %q", domain.ColumnTripDuration, fields[cols.duration])
	}

	rec := domain.TripRecord{
		StartTime:    start,
		StartStation: fields[cols.startStation],
		EndStation:   fields[cols.endStation],
		Duration:     duration,
		UserType:     strings.TrimSpace(fields[cols.userType]),
		Raw:          fields,
	}

	if cols.gender >= 0 {
		rec.Gender = strings.TrimSpace(fields[cols.gender])
	}

	if cols.birthYear >= 0 {
		if cell := strings.TrimSpace(fields[cols.birthYear]); cell != "" {
			year, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return domain.TripRecord{}, fmt.Errorf("invalid %s %q", domain.ColumnBirthYear, cell)
			}
			// NaN and Inf are missing values, the same as a blank cell.
			if !math.IsNaN(year) && !math.IsInf(year, 0) {
				y := int(year)
				rec.BirthYear = &y
			}
		}
	}

	rec.Derive()
	return rec, nil
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s %q", domain.ColumnStartTime, s)
}
