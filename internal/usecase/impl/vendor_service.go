package impl

import (
	"context"
	"fmt"
	"io"
	"time"

	"pushcart/config"
	"pushcart/internal/domain/entity"
	domainerrors "pushcart/internal/domain/errors"
	"pushcart/internal/domain/repository"
	"pushcart/internal/domain/service"
	"pushcart/internal/errors"
	"pushcart/internal/proximity"
	"pushcart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultStaleAfter = 21 * time.Second

// ErrUnauthorized is returned when an account operates on a resource it does
// not own.
var ErrUnauthorized = errors.New("unauthorized to access this resource")

// VendorServiceParams holds dependencies for the vendor service, injected by Fx.
type VendorServiceParams struct {
	fx.In

	VendorRepo   repository.VendorRepository
	LocationRepo repository.VendorLocationRepository
	Hasher       service.PasswordHasher
	PhotoStore   service.PhotoStore
	QRCode       service.QRCodeService
	Alert        service.AlertService
	Config       *config.Config
}

type vendorService struct {
	vendorRepo   repository.VendorRepository
	locationRepo repository.VendorLocationRepository
	hasher       service.PasswordHasher
	photoStore   service.PhotoStore
	qrcode       service.QRCodeService
	alert        service.AlertService
	staleAfter   time.Duration
}

// NewVendorService creates a new vendor service instance.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	staleAfter := defaultStaleAfter
	if params.Config.Proximity != nil && params.Config.Proximity.StaleAfter > 0 {
		staleAfter = params.Config.Proximity.StaleAfter
	}

	return &vendorService{
		vendorRepo:   params.VendorRepo,
		locationRepo: params.LocationRepo,
		hasher:       params.Hasher,
		photoStore:   params.PhotoStore,
		qrcode:       params.QRCode,
		alert:        params.Alert,
		staleAfter:   staleAfter,
	}
}

// RegisterVendor creates an unapproved vendor account.
func (s *vendorService) RegisterVendor(ctx context.Context, input *usecase.RegisterVendorInput) (*entity.Vendor, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash vendor password")
	}

	vendor := &entity.Vendor{
		VendorName:   input.VendorName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Category:     input.Category,
		Description:  input.Description,
		PrimaryArea:  input.PrimaryArea,
		IsActive:     true,
	}

	if err := s.vendorRepo.CreateVendor(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return vendor, nil
}

// GetVendor retrieves one vendor's public profile.
func (s *vendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}

	return vendor, nil
}

// ListApprovedVendors returns the customer-facing directory.
func (s *vendorService) ListApprovedVendors(ctx context.Context) ([]*entity.Vendor, error) {
	vendors, err := s.vendorRepo.FindApprovedVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved vendors: %w", err)
	}

	return vendors, nil
}

// ListNearbyVendors merges the directory with the active location set and
// ranks it by distance from the viewer. Same recompute as the streaming
// proximity view, as a one-shot read.
func (s *vendorService) ListNearbyVendors(ctx context.Context, query *usecase.NearbyQuery) ([]entity.DisplayVendor, error) {
	viewer := entity.GeoPoint{Latitude: query.Latitude, Longitude: query.Longitude}
	if !viewer.Valid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	vendors, err := s.vendorRepo.FindApprovedVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved vendors: %w", err)
	}

	locations, err := s.locationRepo.FindActiveLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active locations: %w", err)
	}

	return proximity.Rank(vendors, locations, &viewer, time.Now(), s.staleAfter), nil
}

// UpdateVendorProfile applies partial profile updates.
func (s *vendorService) UpdateVendorProfile(ctx context.Context, vendorID uuid.UUID, input *usecase.UpdateVendorProfileInput) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}

	if input.VendorName != nil {
		vendor.VendorName = *input.VendorName
	}
	if input.Phone != nil {
		vendor.Phone = *input.Phone
	}
	if input.Category != nil {
		vendor.Category = *input.Category
	}
	if input.Description != nil {
		vendor.Description = *input.Description
	}
	if input.PrimaryArea != nil {
		vendor.PrimaryArea = *input.PrimaryArea
	}
	vendor.UpdatedAt = time.Now()

	if err := s.vendorRepo.UpdateVendor(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	return vendor, nil
}

// UploadVendorPhoto stores the vendor's photo and records its URL.
func (s *vendorService) UploadVendorPhoto(ctx context.Context, vendorID uuid.UUID, contentType string, photo io.Reader) (string, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return "", fmt.Errorf("failed to find vendor: %w", err)
	}

	url, err := s.photoStore.SavePhoto(ctx, vendorID, contentType, photo)
	if err != nil {
		return "", fmt.Errorf("failed to store vendor photo: %w", err)
	}

	vendor.PhotoURL = url
	vendor.UpdatedAt = time.Now()
	if err := s.vendorRepo.UpdateVendor(ctx, vendor); err != nil {
		return "", fmt.Errorf("failed to record photo url: %w", err)
	}

	return url, nil
}

// GetVendorProfileQR renders a PNG QR code linking to the vendor's profile.
func (s *vendorService) GetVendorProfileQR(ctx context.Context, vendorID uuid.UUID) ([]byte, error) {
	if _, err := s.vendorRepo.FindVendorByID(ctx, vendorID); err != nil {
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}

	png, err := s.qrcode.GenerateProfileQR(vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile QR: %w", err)
	}

	return png, nil
}

// AnnounceArrival pushes an "I've arrived" alert to subscribed customers.
func (s *vendorService) AnnounceArrival(ctx context.Context, vendorID uuid.UUID, message string) error {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return fmt.Errorf("failed to find vendor: %w", err)
	}
	if !vendor.IsApproved {
		return domainerrors.ErrVendorNotApproved
	}

	// Alerting is optional; without Firebase configured this is a no-op.
	if s.alert == nil {
		return nil
	}

	if err := s.alert.SendArrivalAlert(ctx, vendorID, vendor.VendorName, message); err != nil {
		return fmt.Errorf("failed to send arrival alert: %w", err)
	}

	return nil
}
