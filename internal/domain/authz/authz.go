// Package authz holds the ownership-based access policy as pure decision
// functions. Handlers and use cases delegate here instead of repeating the
// rules inline, so the policy cannot drift between call sites.
package authz

import (
	"heatmap/internal/domain/entity"

	"github.com/google/uuid"
)

// Decision is the outcome of an access check.
type Decision int

const (
	// Deny refuses the action.
	Deny Decision = iota
	// AllowRead permits reading the target row.
	AllowRead
	// AllowWrite permits reading and mutating the target row.
	AllowWrite
)

// Caller is the identity context a request carries. A zero Caller is an
// unauthenticated (anonymous) caller.
type Caller struct {
	UserID        uuid.UUID
	Role          entity.Role
	Authenticated bool
}

// Anonymous returns the unauthenticated caller.
func Anonymous() Caller {
	return Caller{}
}

// NewCaller builds an authenticated caller.
func NewCaller(userID uuid.UUID, role entity.Role) Caller {
	return Caller{UserID: userID, Role: role, Authenticated: true}
}

// IsAdmin reports whether the caller is an authenticated admin.
func (c Caller) IsAdmin() bool {
	return c.Authenticated && c.Role == entity.RoleAdmin
}

// ForOwned decides access to a row owned by ownerID.
// Unauthenticated callers are denied; admins get write access to every row;
// regular users get write access only to rows they own.
func ForOwned(caller Caller, ownerID uuid.UUID) Decision {
	if !caller.Authenticated {
		return Deny
	}
	if caller.Role == entity.RoleAdmin {
		return AllowWrite
	}
	if caller.UserID == ownerID {
		return AllowWrite
	}

	return Deny
}

// CanRead reports whether the caller may read a row owned by ownerID.
func CanRead(caller Caller, ownerID uuid.UUID) bool {
	return ForOwned(caller, ownerID) >= AllowRead
}

// CanWrite reports whether the caller may mutate a row owned by ownerID.
func CanWrite(caller Caller, ownerID uuid.UUID) bool {
	return ForOwned(caller, ownerID) == AllowWrite
}
