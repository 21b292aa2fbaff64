package usecase

import (
	"context"

	"pushcart/internal/domain/entity"
)

// SubmitFeedbackInput represents a customer feedback submission.
type SubmitFeedbackInput struct {
	CustomerName  string `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone"`
	FeedbackType  string `json:"feedback_type" validate:"required,oneof=general complaint suggestion vendor"`
	Message       string `json:"message" validate:"required,min=5"`
	Rating        *int   `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
}

// FeedbackUsecase defines the interface for customer feedback.
type FeedbackUsecase interface {
	// SubmitFeedback records a feedback submission.
	SubmitFeedback(ctx context.Context, input *SubmitFeedbackInput) (*entity.Feedback, error)
}
