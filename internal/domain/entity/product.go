package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a single catalogue item a vendor sells.
type Product struct {
	ID        uuid.UUID `json:"id"`
	VendorID  uuid.UUID `json:"vendor_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Unit      string    `json:"unit"` // kg, dozen, piece
	Category  string    `json:"category"`
	InStock   bool      `json:"in_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
