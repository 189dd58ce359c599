package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedCity indicates a city outside the supported set.
	ErrUnsupportedCity = errors.New("unsupported city")

	// Dataset Errors.

	// ErrDatasetUnavailable indicates the backing file for a city could not be read.
	ErrDatasetUnavailable = errors.New("dataset unavailable")

	// ErrMalformedDataset indicates the backing file was read but its contents
	// are not a valid trip table (missing column, bad timestamp, bad number).
	ErrMalformedDataset = errors.New("malformed dataset")
)
