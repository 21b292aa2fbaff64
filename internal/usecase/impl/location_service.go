// Package impl contains the concrete implementations of the use case
// interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "pushcart/internal/delivery/context"
	"pushcart/internal/domain/entity"
	domainerrors "pushcart/internal/domain/errors"
	"pushcart/internal/domain/repository"
	"pushcart/internal/domain/service"
	"pushcart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// LocationServiceParams holds dependencies for the location service, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.VendorLocationRepository
	VendorRepo   repository.VendorRepository
	Publisher    service.LocationEventPublisher
	Logger       *slog.Logger
}

type locationService struct {
	locationRepo repository.VendorLocationRepository
	vendorRepo   repository.VendorRepository
	publisher    service.LocationEventPublisher
	logger       *slog.Logger
}

// NewLocationService creates a new location service instance.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		vendorRepo:   params.VendorRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// PublishLocation validates and upserts the vendor's location row, then emits
// an upsert event. The event is best-effort: the row is already durable, and
// readers converge on their next cue anyway.
func (s *locationService) PublishLocation(ctx context.Context, vendorID uuid.UUID, input *usecase.PublishLocationInput) (*entity.VendorLocation, error) {
	position := entity.GeoPoint{Latitude: input.Latitude, Longitude: input.Longitude}
	if !position.Valid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}

	location := &entity.VendorLocation{
		VendorID:    vendor.ID,
		VendorName:  vendor.VendorName,
		Position:    position,
		IsActive:    true,
		LastUpdated: time.Now(),
	}

	if err := s.locationRepo.UpsertLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to upsert location: %w", err)
	}

	s.publishEvent(ctx, &service.LocationEvent{
		Kind:       service.LocationEventUpsert,
		VendorID:   vendor.ID.String(),
		VendorName: vendor.VendorName,
		Latitude:   position.Latitude,
		Longitude:  position.Longitude,
	})

	return location, nil
}

// GoOffline clears the vendor's is_active flag and emits an offline event.
func (s *locationService) GoOffline(ctx context.Context, vendorID uuid.UUID) error {
	if err := s.locationRepo.MarkInactive(ctx, vendorID); err != nil {
		return fmt.Errorf("failed to mark location inactive: %w", err)
	}

	s.publishEvent(ctx, &service.LocationEvent{
		Kind:     service.LocationEventOffline,
		VendorID: vendorID.String(),
	})

	return nil
}

// GetVendorLocation retrieves one vendor's last known location.
func (s *locationService) GetVendorLocation(ctx context.Context, vendorID uuid.UUID) (*entity.VendorLocation, error) {
	location, err := s.locationRepo.FindLocationByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor location: %w", err)
	}

	return location, nil
}

func (s *locationService) publishEvent(ctx context.Context, event *service.LocationEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishLocationEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish location event",
			slog.String("vendor_id", event.VendorID),
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)
	}
}
