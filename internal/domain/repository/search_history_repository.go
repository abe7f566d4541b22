// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"heatmap/internal/domain/entity"

	"github.com/google/uuid"
)

// RecentSearchLimit bounds how many history entries a listing returns.
const RecentSearchLimit = 20

// SearchHistoryRepository defines the interface for the append-only search
// log. Entries are never updated or deleted.
type SearchHistoryRepository interface {
	// Create appends a new history entry for its owning user.
	Create(ctx context.Context, entry *entity.SearchHistory) error

	// FindRecentByUser retrieves the user's most recent entries, newest
	// first, capped at RecentSearchLimit.
	FindRecentByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SearchHistory, error)
}
