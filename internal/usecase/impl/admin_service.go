package impl

import (
	"context"
	"fmt"

	"pushcart/internal/domain/entity"
	"pushcart/internal/domain/repository"
	"pushcart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultFeedbackLimit = 50

// AdminServiceParams holds dependencies for the admin service, injected by Fx.
type AdminServiceParams struct {
	fx.In

	VendorRepo   repository.VendorRepository
	FeedbackRepo repository.FeedbackRepository
	TxManager    repository.TransactionManager
}

type adminService struct {
	vendorRepo   repository.VendorRepository
	feedbackRepo repository.FeedbackRepository
	txManager    repository.TransactionManager
}

// NewAdminService creates a new admin service instance.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		vendorRepo:   params.VendorRepo,
		feedbackRepo: params.FeedbackRepo,
		txManager:    params.TxManager,
	}
}

// ListPendingVendors returns vendors awaiting approval, oldest first.
func (s *adminService) ListPendingVendors(ctx context.Context) ([]*entity.Vendor, error) {
	vendors, err := s.vendorRepo.FindPendingVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending vendors: %w", err)
	}

	return vendors, nil
}

// ApproveVendor marks a vendor as approved.
func (s *adminService) ApproveVendor(ctx context.Context, vendorID uuid.UUID) error {
	if err := s.vendorRepo.SetApproval(ctx, vendorID, true); err != nil {
		return fmt.Errorf("failed to approve vendor: %w", err)
	}

	return nil
}

// RemoveVendor soft-deletes the vendor and takes its location offline in one
// transaction, so a removed vendor can never linger on customer maps.
func (s *adminService) RemoveVendor(ctx context.Context, vendorID uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewVendorRepository().DeleteVendor(ctx, vendorID); err != nil {
			return fmt.Errorf("failed to delete vendor: %w", err)
		}
		if err := repoFactory.NewVendorLocationRepository().MarkInactive(ctx, vendorID); err != nil {
			return fmt.Errorf("failed to deactivate vendor location: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove vendor: %w", err)
	}

	return nil
}

// ListFeedback returns the most recent customer feedback.
func (s *adminService) ListFeedback(ctx context.Context, limit int) ([]*entity.Feedback, error) {
	if limit <= 0 {
		limit = defaultFeedbackLimit
	}

	feedback, err := s.feedbackRepo.FindRecentFeedback(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	return feedback, nil
}
