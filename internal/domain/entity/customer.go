package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a registered resident browsing nearby vendors.
type Customer struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Apartment    string    `json:"apartment"` // Apartment complex / society, used for coarse grouping.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
