// Package domain defines the core business entities for bikeshare.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - City: A supported bikeshare system and its source file
//   - TripRecord: One trip, with month, weekday and hour derived at load time
//   - TripTable: The ordered trips of one city plus its column capabilities
//   - Selection: The month/weekday filter chosen for a session cycle
//   - Reports: The four statistics summaries computed over a table
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
