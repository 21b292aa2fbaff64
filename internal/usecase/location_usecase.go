// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"pushcart/internal/domain/entity"

	"github.com/google/uuid"
)

// PublishLocationInput represents one beacon position publish.
type PublishLocationInput struct {
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// LocationUsecase defines the interface for the shared vendor-locations store.
type LocationUsecase interface {
	// PublishLocation upserts the vendor's location row and emits an
	// upsert event on the feed.
	PublishLocation(ctx context.Context, vendorID uuid.UUID, input *PublishLocationInput) (*entity.VendorLocation, error)

	// GoOffline clears the vendor's is_active flag and emits an offline
	// event. Idempotent; a vendor that never published is a no-op.
	GoOffline(ctx context.Context, vendorID uuid.UUID) error

	// GetVendorLocation retrieves one vendor's last known location.
	GetVendorLocation(ctx context.Context, vendorID uuid.UUID) (*entity.VendorLocation, error)
}
