package model

import (
	"time"

	"github.com/google/uuid"
)

// DemographicModel mirrors the 'demographics' table. The unique index on
// ZipCode enforces at most one row per ZIP code; bulk loads upsert on it.
type DemographicModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ZipCode         string    `gorm:"type:varchar(10);unique;not null"`
	City            string    `gorm:"type:varchar(100)"`
	State           string    `gorm:"type:varchar(50)"`
	Population      *int64
	MedianIncome    *int64
	MedianAge       *float64 `gorm:"type:decimal(5,2)"`
	MedianHomeValue *int64
	Households      *int64
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DemographicModel) TableName() string {
	return "demographics"
}
