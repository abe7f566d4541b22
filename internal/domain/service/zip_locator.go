package service

import "github.com/paulmach/orb"

// ZipLocator resolves ZIP codes to geographic coordinates against a static
// reference table. Points are orb.Point values: (longitude, latitude).
type ZipLocator interface {
	// Lookup returns the reference coordinate for a ZIP code, or ok=false
	// when the table has no entry for it.
	Lookup(zipCode string) (point orb.Point, ok bool)

	// LookupWithDefault returns the reference coordinate for a ZIP code,
	// falling back to the configured default point when unknown.
	LookupWithDefault(zipCode string) orb.Point
}
