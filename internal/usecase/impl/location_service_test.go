package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pushcart/internal/domain/entity"
	domainerrors "pushcart/internal/domain/errors"
	"pushcart/internal/domain/repository"
	"pushcart/internal/domain/service"
	"pushcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	vendorRepo   *fakeVendorRepo
	locationRepo *fakeLocationRepo
	publisher    *fakeEventPublisher
}

func createTestLocationService() locationServiceFixtures {
	vendorRepo := newFakeVendorRepo()
	locationRepo := newFakeLocationRepo()
	publisher := &fakeEventPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewLocationService(LocationServiceParams{
		LocationRepo: locationRepo,
		VendorRepo:   vendorRepo,
		Publisher:    publisher,
		Logger:       logger,
	})

	return locationServiceFixtures{
		service:      svc,
		vendorRepo:   vendorRepo,
		locationRepo: locationRepo,
		publisher:    publisher,
	}
}

func TestLocationService_PublishLocation_Success(t *testing.T) {
	fx := createTestLocationService()

	ctx := context.Background()
	vendorID := uuid.New()
	fx.vendorRepo.add(&entity.Vendor{
		ID:         vendorID,
		VendorName: "Ravi Vegetables",
		IsApproved: true,
	})

	location, err := fx.service.PublishLocation(ctx, vendorID, &usecase.PublishLocationInput{
		Latitude:  12.9279,
		Longitude: 77.6271,
	})

	require.NoError(t, err)
	assert.Equal(t, vendorID, location.VendorID)
	assert.Equal(t, "Ravi Vegetables", location.VendorName)
	assert.True(t, location.IsActive)
	assert.False(t, location.LastUpdated.IsZero())

	require.Len(t, fx.locationRepo.upserts, 1)
	assert.Equal(t, location, fx.locationRepo.upserts[0])

	require.Len(t, fx.publisher.events, 1)
	event := fx.publisher.events[0]
	assert.Equal(t, service.LocationEventUpsert, event.Kind)
	assert.Equal(t, vendorID.String(), event.VendorID)
	assert.Equal(t, "Ravi Vegetables", event.VendorName)
	assert.InDelta(t, 12.9279, event.Latitude, 1e-9)
	assert.InDelta(t, 77.6271, event.Longitude, 1e-9)
}

func TestLocationService_PublishLocation_InvalidCoordinates(t *testing.T) {
	fx := createTestLocationService()

	_, err := fx.service.PublishLocation(context.Background(), uuid.New(), &usecase.PublishLocationInput{
		Latitude:  91,
		Longitude: 77.6271,
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	assert.Empty(t, fx.locationRepo.upserts)
	assert.Empty(t, fx.publisher.events)
}

func TestLocationService_PublishLocation_VendorNotFound(t *testing.T) {
	fx := createTestLocationService()

	_, err := fx.service.PublishLocation(context.Background(), uuid.New(), &usecase.PublishLocationInput{
		Latitude:  12.9279,
		Longitude: 77.6271,
	})

	require.ErrorIs(t, err, repository.ErrVendorNotFound)
	assert.Empty(t, fx.locationRepo.upserts)
}

func TestLocationService_PublishLocation_PublishFailureIsBestEffort(t *testing.T) {
	fx := createTestLocationService()
	fx.publisher.publishErr = errors.New("broker unavailable")

	vendorID := uuid.New()
	fx.vendorRepo.add(&entity.Vendor{ID: vendorID, VendorName: "Ravi Vegetables"})

	// The row is durable before the event goes out; a broken feed must not
	// fail the publish.
	location, err := fx.service.PublishLocation(context.Background(), vendorID, &usecase.PublishLocationInput{
		Latitude:  12.9279,
		Longitude: 77.6271,
	})

	require.NoError(t, err)
	assert.NotNil(t, location)
	require.Len(t, fx.locationRepo.upserts, 1)
}

func TestLocationService_PublishLocation_UpsertError(t *testing.T) {
	fx := createTestLocationService()
	fx.locationRepo.upsertErr = errors.New("connection reset")

	vendorID := uuid.New()
	fx.vendorRepo.add(&entity.Vendor{ID: vendorID, VendorName: "Ravi Vegetables"})

	_, err := fx.service.PublishLocation(context.Background(), vendorID, &usecase.PublishLocationInput{
		Latitude:  12.9279,
		Longitude: 77.6271,
	})

	require.Error(t, err)
	assert.Empty(t, fx.publisher.events)
}

func TestLocationService_GoOffline_Success(t *testing.T) {
	fx := createTestLocationService()

	vendorID := uuid.New()
	err := fx.service.GoOffline(context.Background(), vendorID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{vendorID}, fx.locationRepo.inactive)

	require.Len(t, fx.publisher.events, 1)
	event := fx.publisher.events[0]
	assert.Equal(t, service.LocationEventOffline, event.Kind)
	assert.Equal(t, vendorID.String(), event.VendorID)
}

func TestLocationService_GoOffline_RepoError(t *testing.T) {
	fx := createTestLocationService()
	fx.locationRepo.markErr = errors.New("connection reset")

	err := fx.service.GoOffline(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Empty(t, fx.publisher.events)
}

func TestLocationService_GetVendorLocation_Success(t *testing.T) {
	fx := createTestLocationService()

	vendorID := uuid.New()
	stored := &entity.VendorLocation{
		VendorID:   vendorID,
		VendorName: "Ravi Vegetables",
		Position:   entity.GeoPoint{Latitude: 12.9279, Longitude: 77.6271},
		IsActive:   true,
	}
	fx.locationRepo.locations[vendorID] = stored

	location, err := fx.service.GetVendorLocation(context.Background(), vendorID)

	require.NoError(t, err)
	assert.Equal(t, stored, location)
}

func TestLocationService_GetVendorLocation_NotFound(t *testing.T) {
	fx := createTestLocationService()

	_, err := fx.service.GetVendorLocation(context.Background(), uuid.New())

	require.ErrorIs(t, err, repository.ErrLocationNotFound)
}
