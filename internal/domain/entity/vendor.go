package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is the administrative directory record for a street vendor.
// It is independent of the vendor's live position; the two are joined by ID
// when building the customer-facing list.
type Vendor struct {
	ID           uuid.UUID `json:"id"`
	VendorName   string    `json:"vendor_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Category     string    `json:"category"`     // e.g. vegetables, fruits, flowers, knife
	Description  string    `json:"description"`  // Free-form pitch shown on the profile page.
	PrimaryArea  string    `json:"primary_area"` // Usual service area, e.g. "Bellandur".
	PhotoURL     string    `json:"photo_url"`
	Rating       float64   `json:"rating"`
	IsApproved   bool      `json:"is_approved"` // Set by an admin; unapproved vendors are hidden from customers.
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
