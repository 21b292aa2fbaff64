package impl

import (
	"context"
	"fmt"

	"pushcart/internal/domain/entity"
	"pushcart/internal/domain/repository"
	"pushcart/internal/usecase"

	"go.uber.org/fx"
)

// FeedbackServiceParams holds dependencies for the feedback service, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

// NewFeedbackService creates a new feedback service instance.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{feedbackRepo: params.FeedbackRepo}
}

// SubmitFeedback records a feedback submission.
func (s *feedbackService) SubmitFeedback(ctx context.Context, input *usecase.SubmitFeedbackInput) (*entity.Feedback, error) {
	feedback := &entity.Feedback{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		FeedbackType:  input.FeedbackType,
		Message:       input.Message,
		Rating:        input.Rating,
	}

	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return feedback, nil
}
