package repository

import (
	"context"

	"pushcart/internal/domain/entity"
	"pushcart/internal/errors"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a vendor has no location record.
var ErrLocationNotFound = errors.New("vendor location not found")

// VendorLocationRepository defines the interface for the shared
// vendor-locations store. The table holds at most one row per vendor;
// UpsertLocation replaces the row keyed by vendor_id, so concurrent writers
// resolve to last-write-wins.
type VendorLocationRepository interface {
	// UpsertLocation inserts or replaces the vendor's location row
	// (ON CONFLICT (vendor_id) DO UPDATE).
	UpsertLocation(ctx context.Context, location *entity.VendorLocation) error

	// MarkInactive sets is_active = false for the vendor's row. Missing
	// rows are not an error: a vendor that never published has nothing to
	// deactivate.
	MarkInactive(ctx context.Context, vendorID uuid.UUID) error

	// FindLocationByVendor retrieves the location row for one vendor.
	FindLocationByVendor(ctx context.Context, vendorID uuid.UUID) (*entity.VendorLocation, error)

	// FindActiveLocations retrieves all rows with is_active = true.
	FindActiveLocations(ctx context.Context) ([]*entity.VendorLocation, error)
}
