// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SearchHistory is one entry of a user's append-only search log. Entries are
// created on each search, read back newest first, and never modified.
type SearchHistory struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the entry.
	UserID     uuid.UUID // The ID of the owning user.
	ZipCode    string    // The ZIP code that was searched.
	Filters    Document  // Opaque filter criteria, stored verbatim.
	SearchedAt time.Time // Timestamp of the search.
}
