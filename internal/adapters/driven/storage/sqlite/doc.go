// Package sqlite stores imported trip tables in a SQLite database.
//
// It uses modernc.org/sqlite, a pure Go SQLite implementation, so the
// binary builds without CGO. A Store implements driven.TripStore: the
// import command fills it from the city CSV files and the session reads
// from it when data.backend is "sqlite".
//
// # Schema
//
// The schema is managed through versioned migrations in the migrations/
// directory. Applied versions are recorded in the schema_migrations table.
//
// # Data Location
//
// By default the database is stored at <data_dir>/bikeshare.db.
package sqlite
