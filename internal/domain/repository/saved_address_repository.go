// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"heatmap/internal/domain/entity"
	"heatmap/internal/errors"

	"github.com/google/uuid"
)

// ErrSavedAddressNotFound is returned when a saved address is not found.
var ErrSavedAddressNotFound = errors.New("saved address not found")

// SavedAddressRepository defines the interface for saved-address bookmarks.
type SavedAddressRepository interface {
	// Create persists a new bookmark for its owning user.
	Create(ctx context.Context, address *entity.SavedAddress) error

	// FindByID retrieves a bookmark by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavedAddress, error)

	// FindByUser retrieves all bookmarks owned by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedAddress, error)

	// FindAll retrieves every bookmark, newest first. Admin listing only.
	FindAll(ctx context.Context) ([]*entity.SavedAddress, error)

	// UpdateNameAndNotes mutates the only two fields that may change after
	// creation.
	UpdateNameAndNotes(ctx context.Context, id uuid.UUID, name, notes string) error

	// Delete removes a bookmark by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of bookmarks.
	Count(ctx context.Context) (int64, error)
}
