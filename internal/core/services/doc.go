// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The statistics and paging services are pure functions of the trip
// table they are given and hold no state between calls.
package services
