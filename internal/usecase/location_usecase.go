package usecase

import (
	"context"

	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLocationInput represents the input for recording a new business location.
type CreateLocationInput struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Address      string   `json:"address" validate:"required,max=200"`
	City         string   `json:"city" validate:"required,max=100"`
	State        string   `json:"state" validate:"required,len=2"`
	ZipCode      string   `json:"zip_code" validate:"required,min=5,max=10"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	BusinessType string   `json:"business_type"`
	Notes        string   `json:"notes"`
}

// LocationUsecase defines the interface for business-location use cases.
// Locations are append-mostly: no update or delete operations exist.
type LocationUsecase interface {
	// CreateLocation records a location owned by the caller. Missing
	// coordinates are backfilled from the ZIP reference table.
	CreateLocation(ctx context.Context, caller authz.Caller, input *CreateLocationInput) (*entity.Location, error)

	// GetLocation retrieves one location; owner or admin only.
	GetLocation(ctx context.Context, caller authz.Caller, id uuid.UUID) (*entity.Location, error)

	// ListLocations returns all locations for an admin caller, or the
	// caller's own rows otherwise.
	ListLocations(ctx context.Context, caller authz.Caller) ([]*entity.Location, error)
}
