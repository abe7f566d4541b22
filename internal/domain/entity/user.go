// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Every Location, SearchHistory and
// SavedAddress row is owned by exactly one User.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username  string    // Unique login/display name.
	Email     string    // Unique contact email, also accepted as a login identifier.
	Phone     string    // Optional contact phone number.
	Role      Role      // Either RoleAdmin or RoleUser.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// IsAdmin reports whether this user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
