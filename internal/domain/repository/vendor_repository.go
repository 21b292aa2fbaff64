// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pushcart/internal/domain/entity"
	"pushcart/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for vendor persistence.
var (
	// ErrVendorNotFound is returned when a vendor is not found.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrDuplicateVendor is returned when a vendor with the same email already exists.
	ErrDuplicateVendor = errors.New("vendor already exists")
)

// VendorRepository defines the interface for vendor directory operations.
type VendorRepository interface {
	// CreateVendor persists a newly registered (unapproved) vendor.
	CreateVendor(ctx context.Context, vendor *entity.Vendor) error

	// FindVendorByID retrieves a vendor by its unique ID.
	FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindVendorByEmail retrieves a vendor by login email.
	FindVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error)

	// FindApprovedVendors retrieves the customer-facing directory:
	// approved and active vendors.
	FindApprovedVendors(ctx context.Context) ([]*entity.Vendor, error)

	// FindPendingVendors retrieves vendors awaiting admin approval.
	FindPendingVendors(ctx context.Context) ([]*entity.Vendor, error)

	// UpdateVendor updates an existing vendor record.
	UpdateVendor(ctx context.Context, vendor *entity.Vendor) error

	// SetApproval flips the admin approval flag for a vendor.
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error

	// DeleteVendor removes a vendor by its ID (soft delete).
	DeleteVendor(ctx context.Context, id uuid.UUID) error
}
