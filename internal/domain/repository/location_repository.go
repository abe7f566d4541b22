// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"heatmap/internal/domain/entity"
	"heatmap/internal/errors"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for location-related database
// operations. Locations are create+read only; no update or delete exists.
type LocationRepository interface {
	// Create persists a new location for its owning user.
	Create(ctx context.Context, location *entity.Location) error

	// FindByID retrieves a location by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindByUser retrieves all locations owned by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Location, error)

	// FindAll retrieves every location, newest first. Admin listing only.
	FindAll(ctx context.Context) ([]*entity.Location, error)

	// Count returns the total number of locations.
	Count(ctx context.Context) (int64, error)
}
