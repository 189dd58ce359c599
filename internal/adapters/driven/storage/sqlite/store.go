package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.TripStore = (*Store)(nil)

// timeLayout is how start times are written to the database.
const timeLayout = time.RFC3339Nano

// Store is a SQLite-backed trip store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens, creating if needed, the trip database at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: database path is required", domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies every up migration newer than the recorded version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= current {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		logger.Debug("Applied migration %s", name)
	}

	return nil
}

// Save replaces the stored dataset of table.City in a single transaction.
func (s *Store) Save(ctx context.Context, table *domain.TripTable) error {
	if table == nil || !table.City.IsValid() {
		return fmt.Errorf("%w: table without a supported city", domain.ErrInvalidInput)
	}

	columns, err := json.Marshal(table.Schema.Columns)
	if err != nil {
		return fmt.Errorf("marshalling columns: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op once committed

	city := string(table.City)
	if _, err := tx.ExecContext(ctx, "DELETE FROM datasets WHERE city = ?", city); err != nil {
		return fmt.Errorf("clearing dataset: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO datasets (city, columns, has_gender, has_birth_year, imported_at)
		VALUES (?, ?, ?, ?, ?)
	`, city, string(columns), table.Schema.HasGender, table.Schema.HasBirthYear, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving dataset: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trips (city, seq, start_time, start_station, end_station, duration,
			user_type, gender, birth_year, raw)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing trip insert: %w", err)
	}
	defer stmt.Close()

	for i := range table.Records {
		rec := &table.Records[i]
		raw, err := json.Marshal(rec.Raw)
		if err != nil {
			return fmt.Errorf("marshalling trip %d: %w", i, err)
		}
		_, err = stmt.ExecContext(ctx, city, i, rec.StartTime.Format(timeLayout),
			rec.StartStation, rec.EndStation, rec.Duration, rec.UserType, rec.Gender,
			nullInt(rec.BirthYear), string(raw))
		if err != nil {
			return fmt.Errorf("saving trip %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing dataset: %w", err)
	}
	return nil
}

// Load returns the stored trips of city in import order.
func (s *Store) Load(ctx context.Context, city domain.City) (*domain.TripTable, error) {
	table := &domain.TripTable{City: city}

	var columns string
	row := s.db.QueryRowContext(ctx,
		"SELECT columns, has_gender, has_birth_year FROM datasets WHERE city = ?", string(city))
	if err := row.Scan(&columns, &table.Schema.HasGender, &table.Schema.HasBirthYear); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s has not been imported into %s: %w",
				domain.ErrDatasetUnavailable, city, s.path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning dataset: %w", err)
	}
	if err := json.Unmarshal([]byte(columns), &table.Schema.Columns); err != nil {
		return nil, fmt.Errorf("%w: columns of %s: %w", domain.ErrMalformedDataset, city, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT start_time, start_station, end_station, duration, user_type, gender, birth_year, raw
		FROM trips WHERE city = ? ORDER BY seq
	`, string(city))
	if err != nil {
		return nil, fmt.Errorf("querying trips: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec domain.TripRecord
		var start, raw string
		var birthYear sql.NullInt64
		if err := rows.Scan(&start, &rec.StartStation, &rec.EndStation, &rec.Duration,
			&rec.UserType, &rec.Gender, &birthYear, &raw); err != nil {
			return nil, fmt.Errorf("scanning trip: %w", err)
		}

		rec.StartTime, err = time.Parse(timeLayout, start)
		if err != nil {
			return nil, fmt.Errorf("%w: start time %q: %w", domain.ErrMalformedDataset, start, err)
		}
		if birthYear.Valid {
			year := int(birthYear.Int64)
			rec.BirthYear = &year
		}
		if err := json.Unmarshal([]byte(raw), &rec.Raw); err != nil {
			return nil, fmt.Errorf("%w: raw fields: %w", domain.ErrMalformedDataset, err)
		}

		rec.Derive()
		table.Records = append(table.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trips: %w", err)
	}

	logger.Debug("Loaded %d %s trips from %s", table.Len(), city, s.path)
	return table, nil
}

// nullInt converts an optional int to a nullable column value.
func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
