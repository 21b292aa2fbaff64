package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorLocationModel mirrors the 'vendor_locations' table. The vendor ID is
// the primary key, so the table holds at most one row per vendor and every
// write is an idempotent replacement keyed on it.
type VendorLocationModel struct {
	VendorID    uuid.UUID `gorm:"type:uuid;primary_key"`
	VendorName  string    `gorm:"type:varchar(100)"`
	Latitude    float64   `gorm:"type:double precision;not null"`
	Longitude   float64   `gorm:"type:double precision;not null"`
	IsActive    bool      `gorm:"not null;default:false;index"`
	LastUpdated time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (VendorLocationModel) TableName() string {
	return "vendor_locations"
}
