// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"heatmap/internal/domain/entity"
	"heatmap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already exists")
)

// Credentials couples a user with its stored password hash. The hash never
// leaves the persistence and account layers.
type Credentials struct {
	User         *entity.User
	PasswordHash string
}

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user together with its password hash.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// FindByID retrieves a user by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindCredentials retrieves a user and its password hash by username or
	// email. Returns ErrUserNotFound when neither matches.
	FindCredentials(ctx context.Context, identifier string) (*Credentials, error)

	// Update persists profile changes (username, email, phone).
	Update(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}
