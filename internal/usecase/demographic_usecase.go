package usecase

import (
	"context"

	"heatmap/internal/domain/authz"
)

// DemographicRecordInput is one ZIP-code record of a bulk load.
type DemographicRecordInput struct {
	ZipCode         string   `json:"zip_code" validate:"required,min=5,max=10"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Population      *int64   `json:"population,omitempty"`
	MedianIncome    *int64   `json:"median_income,omitempty"`
	MedianAge       *float64 `json:"median_age,omitempty"`
	MedianHomeValue *int64   `json:"median_home_value,omitempty"`
	Households      *int64   `json:"households,omitempty"`
}

// DemographicOutput decorates a stored record with its derived income bracket.
// The bracket is computed on read and never stored.
type DemographicOutput struct {
	ZipCode         string   `json:"zip_code"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Population      *int64   `json:"population"`
	MedianIncome    *int64   `json:"median_income"`
	MedianAge       *float64 `json:"median_age"`
	MedianHomeValue *int64   `json:"median_home_value"`
	Households      *int64   `json:"households"`
	IncomeRange     string   `json:"income_range"`
}

// BulkLoadOutput reports how a bulk load changed the demographics table.
type BulkLoadOutput struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// DemographicUsecase defines the interface for ZIP-code statistics use cases.
// Reads are public; the bulk load is admin-only.
type DemographicUsecase interface {
	// ListDemographics returns every record ordered by ZIP code, each with
	// its derived income bracket.
	ListDemographics(ctx context.Context) ([]*DemographicOutput, error)

	// GetDemographic returns the record for one ZIP code.
	GetDemographic(ctx context.Context, zipCode string) (*DemographicOutput, error)

	// BulkLoad upserts records by ZIP code inside one transaction. Any
	// failure rolls the whole batch back.
	BulkLoad(ctx context.Context, caller authz.Caller, records []*DemographicRecordInput) (*BulkLoadOutput, error)
}
