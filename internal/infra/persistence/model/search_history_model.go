package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SearchHistoryModel mirrors the 'search_history' table. Rows are append-only.
type SearchHistoryModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_search_history_on_user"`
	ZipCode    string         `gorm:"type:varchar(10);not null"`
	Filters    datatypes.JSON `gorm:"type:json"`
	SearchedAt time.Time      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SearchHistoryModel) TableName() string {
	return "search_history"
}
