// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a business point of interest recorded by a user. Locations are
// append-mostly: they are created and read, never updated or deleted.
type Location struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the location.
	UserID       uuid.UUID    // The ID of the owning user. Immutable after creation.
	Name         string       // Business name. Required.
	Address      string       // Street address. Required.
	City         string       // City. Required.
	State        string       // Two-letter state code. Required.
	ZipCode      string       // ZIP code. Required; joins Demographic rows by value.
	Latitude     *float64     // Optional latitude; valid range when present.
	Longitude    *float64     // Optional longitude; valid range when present.
	BusinessType BusinessType // Closed classification, unknown values fold into "other".
	Notes        string       // Optional free-text notes.
	CreatedAt    time.Time    // Timestamp of when this location was created.
}

// HasCoordinates reports whether both latitude and longitude are set.
// A half-specified pair counts as having coordinates so a backfill never
// overwrites a value the user entered.
func (l *Location) HasCoordinates() bool {
	return l.Latitude != nil || l.Longitude != nil
}
