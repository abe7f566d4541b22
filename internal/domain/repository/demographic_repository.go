// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"heatmap/internal/domain/entity"
	"heatmap/internal/errors"
)

// ErrDemographicNotFound is returned when a demographic record is not found.
var ErrDemographicNotFound = errors.New("demographic not found")

// UpsertResult reports how a bulk demographic load changed the table.
type UpsertResult struct {
	Inserted int
	Updated  int
}

// DemographicRepository defines the interface for ZIP-code statistics.
// The table holds at most one row per ZIP code.
type DemographicRepository interface {
	// Upsert inserts the record or, when a row with the same ZIP code already
	// exists, updates it in place. Reports whether the row was inserted.
	// The write is expressed as update-if-exists-else-insert so concurrent
	// loads never produce duplicate rows for a ZIP code.
	Upsert(ctx context.Context, record *entity.Demographic) (inserted bool, err error)

	// FindByZip retrieves the record for a ZIP code.
	FindByZip(ctx context.Context, zipCode string) (*entity.Demographic, error)

	// FindAll retrieves every record ordered by ZIP code.
	FindAll(ctx context.Context) ([]*entity.Demographic, error)

	// Count returns the total number of demographic records.
	Count(ctx context.Context) (int64, error)
}
