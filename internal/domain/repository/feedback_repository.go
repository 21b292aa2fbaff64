package repository

import (
	"context"

	"pushcart/internal/domain/entity"
)

// FeedbackRepository defines the interface for customer feedback records.
type FeedbackRepository interface {
	// CreateFeedback persists a feedback submission.
	CreateFeedback(ctx context.Context, feedback *entity.Feedback) error

	// FindRecentFeedback retrieves the most recent submissions, newest first.
	FindRecentFeedback(ctx context.Context, limit int) ([]*entity.Feedback, error)
}
