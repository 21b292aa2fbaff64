package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a free-form customer feedback submission. Ratings are
// optional; a nil Rating means the customer skipped the star widget.
type Feedback struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	FeedbackType  string    `json:"feedback_type"` // general, complaint, suggestion, vendor
	Message       string    `json:"message"`
	Rating        *int      `json:"rating,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
