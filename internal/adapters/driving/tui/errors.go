package tui

import "errors"

// ErrMissingTable is returned when no trip table is provided.
var ErrMissingTable = errors.New("tui: trip table is required")
