package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SavedAddressModel mirrors the 'saved_addresses' table.
type SavedAddressModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_saved_addresses_on_user"`
	Name        string         `gorm:"type:varchar(100)"`
	Address     string         `gorm:"type:varchar(200);not null"`
	City        string         `gorm:"type:varchar(100)"`
	State       string         `gorm:"type:varchar(2)"`
	ZipCode     string         `gorm:"type:varchar(10)"`
	AddressType string         `gorm:"type:varchar(50)"`
	FiltersUsed datatypes.JSON `gorm:"type:json"`
	Notes       string         `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedAddressModel) TableName() string {
	return "saved_addresses"
}
