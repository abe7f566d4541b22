package usecase

import (
	"context"

	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"
)

// RecordSearchInput captures one search for the caller's history log.
// Filters is stored verbatim and never interpreted.
type RecordSearchInput struct {
	ZipCode string          `json:"zip_code" validate:"required,min=5,max=10"`
	Filters entity.Document `json:"filters,omitempty"`
}

// SearchHistoryUsecase defines the interface for the append-only search log.
type SearchHistoryUsecase interface {
	// RecordSearch appends an entry owned by the caller.
	RecordSearch(ctx context.Context, caller authz.Caller, input *RecordSearchInput) (*entity.SearchHistory, error)

	// ListRecentSearches returns the caller's most recent entries, newest
	// first, capped at the repository limit.
	ListRecentSearches(ctx context.Context, caller authz.Caller) ([]*entity.SearchHistory, error)
}
