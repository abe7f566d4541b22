// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Income bracket labels derived from median income. The bracket is never
// stored; it is recomputed from MedianIncome wherever it is needed.
const (
	IncomeUnknown     = "Unknown"
	IncomeLow         = "Low Income"
	IncomeMiddle      = "Middle Income"
	IncomeUpperMiddle = "Upper Middle Income"
	IncomeHigh        = "High Income"
)

// Income bracket thresholds in whole dollars.
const (
	incomeMiddleFloor      = 40000
	incomeUpperMiddleFloor = 75000
	incomeHighFloor        = 120000
)

// Demographic holds ZIP-code-level statistics. At most one row exists per
// ZIP code; bulk loads upsert on ZipCode.
type Demographic struct {
	ID              uuid.UUID // The Global Unique Identifier (GUID) for the record.
	ZipCode         string    // Unique ZIP code this record describes.
	City            string    // Optional city name.
	State           string    // Optional two-letter state code.
	Population      *int64    // Optional population count.
	MedianIncome    *int64    // Optional median household income in dollars.
	MedianAge       *float64  // Optional median age.
	MedianHomeValue *int64    // Optional median home value in dollars.
	Households      *int64    // Optional household count.
	UpdatedAt       time.Time // Timestamp of the last load that touched this row.
}

// IncomeBracket maps a nullable median income onto one of the five bracket
// labels. This is the single shared implementation; every caller that needs a
// bracket goes through it so the thresholds cannot drift.
func IncomeBracket(medianIncome *int64) string {
	if medianIncome == nil || *medianIncome == 0 {
		return IncomeUnknown
	}

	switch income := *medianIncome; {
	case income < incomeMiddleFloor:
		return IncomeLow
	case income < incomeUpperMiddleFloor:
		return IncomeMiddle
	case income < incomeHighFloor:
		return IncomeUpperMiddle
	default:
		return IncomeHigh
	}
}

// IncomeRange returns the derived income bracket for this record.
func (d *Demographic) IncomeRange() string {
	return IncomeBracket(d.MedianIncome)
}
