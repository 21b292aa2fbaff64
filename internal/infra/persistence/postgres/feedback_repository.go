package postgres

import (
	"context"

	"pushcart/internal/domain/entity"
	domainerrors "pushcart/internal/domain/errors"
	"pushcart/internal/domain/repository"
	"pushcart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedbackRepository implements repository.FeedbackRepository using GORM.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// CreateFeedback persists a feedback submission.
func (repo *feedbackRepository) CreateFeedback(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt

	return nil
}

// FindRecentFeedback retrieves the most recent submissions, newest first.
func (repo *feedbackRepository) FindRecentFeedback(ctx context.Context, limit int) ([]*entity.Feedback, error) {
	var feedbackMs []model.FeedbackModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&feedbackMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent feedback")
	}

	feedbacks := make([]*entity.Feedback, 0, len(feedbackMs))
	for i := range feedbackMs {
		feedbacks = append(feedbacks, toFeedbackDomain(&feedbackMs[i]))
	}

	return feedbacks, nil
}

// --- Mapper Functions ---

func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:            data.ID,
		CustomerName:  data.CustomerName,
		CustomerEmail: data.CustomerEmail,
		CustomerPhone: data.CustomerPhone,
		FeedbackType:  data.FeedbackType,
		Message:       data.Message,
		Rating:        data.Rating,
		CreatedAt:     data.CreatedAt,
	}
}

func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:            data.ID,
		CustomerName:  data.CustomerName,
		CustomerEmail: data.CustomerEmail,
		CustomerPhone: data.CustomerPhone,
		FeedbackType:  data.FeedbackType,
		Message:       data.Message,
		Rating:        data.Rating,
		CreatedAt:     data.CreatedAt,
	}
}
