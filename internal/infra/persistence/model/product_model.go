package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. VendorID references vendors.id.
type ProductModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Price     float64   `gorm:"type:numeric(10,2);not null"`
	Unit      string    `gorm:"type:varchar(20)"`
	Category  string    `gorm:"type:varchar(50)"`
	InStock   bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
