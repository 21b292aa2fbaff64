package usecase

import (
	"context"
	"io"

	"pushcart/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterVendorInput represents a vendor registration request.
type RegisterVendorInput struct {
	VendorName  string `json:"vendor_name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=8,max=20"`
	Password    string `json:"password" validate:"required,min=8"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	PrimaryArea string `json:"primary_area"`
}

// UpdateVendorProfileInput carries optional profile updates.
type UpdateVendorProfileInput struct {
	VendorName  *string `json:"vendor_name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	PrimaryArea *string `json:"primary_area,omitempty"`
}

// NearbyQuery is the viewer position for a one-shot ranked directory read.
type NearbyQuery struct {
	Latitude  float64 `query:"lat" validate:"gte=-90,lte=90"`
	Longitude float64 `query:"lng" validate:"gte=-180,lte=180"`
}

// VendorUsecase defines the interface for the vendor directory and profile
// operations.
type VendorUsecase interface {
	// RegisterVendor creates an unapproved vendor account.
	RegisterVendor(ctx context.Context, input *RegisterVendorInput) (*entity.Vendor, error)

	// GetVendor retrieves one vendor's public profile.
	GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// ListApprovedVendors returns the customer-facing directory.
	ListApprovedVendors(ctx context.Context) ([]*entity.Vendor, error)

	// ListNearbyVendors returns the merged, distance-ranked vendor list for
	// a viewer position.
	ListNearbyVendors(ctx context.Context, query *NearbyQuery) ([]entity.DisplayVendor, error)

	// UpdateVendorProfile applies partial profile updates.
	UpdateVendorProfile(ctx context.Context, vendorID uuid.UUID, input *UpdateVendorProfileInput) (*entity.Vendor, error)

	// UploadVendorPhoto stores the vendor's photo and records its URL.
	UploadVendorPhoto(ctx context.Context, vendorID uuid.UUID, contentType string, photo io.Reader) (string, error)

	// GetVendorProfileQR renders a PNG QR code linking to the profile.
	GetVendorProfileQR(ctx context.Context, vendorID uuid.UUID) ([]byte, error)

	// AnnounceArrival pushes an "I've arrived" alert to the vendor's
	// subscribed customers.
	AnnounceArrival(ctx context.Context, vendorID uuid.UUID, message string) error
}
