package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
// ZipCode joins the demographics table by value, not by foreign key.
type LocationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_locations_on_user"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Address      string    `gorm:"type:varchar(200);not null"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(2);not null"`
	ZipCode      string    `gorm:"type:varchar(10);not null;index:idx_locations_on_zip"`
	Latitude     *float64  `gorm:"type:decimal(10,8)"`
	Longitude    *float64  `gorm:"type:decimal(11,8)"`
	BusinessType string    `gorm:"type:varchar(50);not null"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
