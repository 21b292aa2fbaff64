package usecase

import (
	"context"

	"pushcart/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the interface for admin moderation operations.
type AdminUsecase interface {
	// ListPendingVendors returns vendors awaiting approval, oldest first.
	ListPendingVendors(ctx context.Context) ([]*entity.Vendor, error)

	// ApproveVendor marks a vendor as approved, making it visible to
	// customers.
	ApproveVendor(ctx context.Context, vendorID uuid.UUID) error

	// RemoveVendor soft-deletes a vendor and takes its location offline in
	// one transaction.
	RemoveVendor(ctx context.Context, vendorID uuid.UUID) error

	// ListFeedback returns the most recent customer feedback.
	ListFeedback(ctx context.Context, limit int) ([]*entity.Feedback, error)
}
