package domain

import (
	"fmt"
	"strings"
)

// City identifies a supported bikeshare system.
type City string

// Supported cities.
const (
	// CityChicago is the Divvy system in Chicago.
	CityChicago City = "chicago"

	// CityNewYork is the Citi Bike system in New York City.
	CityNewYork City = "new york city"

	// CityWashington is the Capital Bikeshare system in Washington, DC.
	CityWashington City = "washington"
)

// AllCities returns every supported city in prompt order.
func AllCities() []City {
	return []City{CityChicago, CityNewYork, CityWashington}
}

// ParseCity resolves user input to a supported city.
// Matching ignores case and surrounding whitespace.
func ParseCity(input string) (City, error) {
	c := City(strings.ToLower(strings.TrimSpace(input)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCity, input)
	}
	return c, nil
}

// IsValid returns true if the city is recognised.
func (c City) IsValid() bool {
	switch c {
	case CityChicago, CityNewYork, CityWashington:
		return true
	default:
		return false
	}
}

// Key returns the identifier used for the city in configuration keys
// and default file names, e.g. "new_york_city".
func (c City) Key() string {
	return strings.ReplaceAll(string(c), " ", "_")
}

// FileName returns the default CSV file name for the city.
func (c City) FileName() string {
	return c.Key() + ".csv"
}

// String returns the string representation.
func (c City) String() string {
	return string(c)
}

// Description returns a human-readable name for the city.
func (c City) Description() string {
	switch c {
	case CityChicago:
		return "Chicago"
	case CityNewYork:
		return "New York City"
	case CityWashington:
		return "Washington"
	default:
		return unknownDescription
	}
}
