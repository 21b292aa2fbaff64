package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel mirrors the 'customer_feedback' table. Rating is nullable,
// the form's star widget is optional.
type FeedbackModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerName  string    `gorm:"type:varchar(100)"`
	CustomerEmail string    `gorm:"type:varchar(255)"`
	CustomerPhone string    `gorm:"type:varchar(20)"`
	FeedbackType  string    `gorm:"type:varchar(30);not null;default:'general'"`
	Message       string    `gorm:"type:text;not null"`
	Rating        *int      `gorm:"type:smallint"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "customer_feedback"
}
