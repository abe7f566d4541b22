package usecase

import (
	"context"

	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSavedAddressInput represents the input for bookmarking an address.
type CreateSavedAddressInput struct {
	Name        string          `json:"name" validate:"omitempty,max=100"`
	Address     string          `json:"address" validate:"required,max=200"`
	City        string          `json:"city" validate:"omitempty,max=100"`
	State       string          `json:"state" validate:"omitempty,len=2"`
	ZipCode     string          `json:"zip_code" validate:"omitempty,min=5,max=10"`
	AddressType string          `json:"address_type" validate:"omitempty,oneof=residential commercial"`
	FiltersUsed entity.Document `json:"filters_used,omitempty"`
	Notes       string          `json:"notes"`
}

// UpdateSavedAddressInput carries the only two fields that may change after
// creation. Nil fields are left unchanged.
type UpdateSavedAddressInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Notes *string `json:"notes,omitempty"`
}

// SavedAddressUsecase defines the interface for saved-address bookmark use cases.
type SavedAddressUsecase interface {
	// CreateSavedAddress bookmarks an address for the caller.
	CreateSavedAddress(ctx context.Context, caller authz.Caller, input *CreateSavedAddressInput) (*entity.SavedAddress, error)

	// ListSavedAddresses returns all bookmarks for an admin caller, or the
	// caller's own rows otherwise.
	ListSavedAddresses(ctx context.Context, caller authz.Caller) ([]*entity.SavedAddress, error)

	// UpdateSavedAddress changes a bookmark's name and notes; owner or admin only.
	UpdateSavedAddress(ctx context.Context, caller authz.Caller, id uuid.UUID, input *UpdateSavedAddressInput) (*entity.SavedAddress, error)

	// DeleteSavedAddress removes a bookmark; owner or admin only.
	DeleteSavedAddress(ctx context.Context, caller authz.Caller, id uuid.UUID) error
}
