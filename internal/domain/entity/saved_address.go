// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AddressType classifies a saved address.
type AddressType string

const (
	// AddressTypeResidential marks a residential address.
	AddressTypeResidential AddressType = "residential"
	// AddressTypeCommercial marks a commercial address.
	AddressTypeCommercial AddressType = "commercial"
)

// String returns the string representation of the AddressType.
func (a AddressType) String() string {
	return string(a)
}

// SavedAddress is a user-curated bookmark of an address together with the
// filter criteria that surfaced it. Only Name and Notes are mutable after
// creation; the owner or an admin may delete the row.
type SavedAddress struct {
	ID          uuid.UUID   // The Global Unique Identifier (GUID) for the bookmark.
	UserID      uuid.UUID   // The ID of the owning user.
	Name        string      // Optional display name, e.g. "Johnson House".
	Address     string      // Street address. Required.
	City        string      // Optional city.
	State       string      // Optional two-letter state code.
	ZipCode     string      // Optional ZIP code.
	AddressType AddressType // residential or commercial.
	FiltersUsed Document    // Opaque filter criteria that produced this bookmark.
	Notes       string      // Optional free-text notes.
	CreatedAt   time.Time   // Timestamp of when this bookmark was created.
}
