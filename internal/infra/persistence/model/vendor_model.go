package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorModel mirrors the 'vendors' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type VendorModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorName   string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Phone        string    `gorm:"type:varchar(20)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Category     string    `gorm:"type:varchar(50);index"`
	Description  string    `gorm:"type:text"`
	PrimaryArea  string    `gorm:"type:varchar(100)"`
	PhotoURL     string    `gorm:"type:varchar(512)"`
	Rating       float64   `gorm:"type:numeric(2,1);default:0"`
	IsApproved   bool      `gorm:"not null;default:false;index"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	Products []ProductModel       `gorm:"foreignKey:VendorID"`
	Location *VendorLocationModel `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
