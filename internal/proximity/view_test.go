package proximity

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pushcart/internal/domain/entity"
	"pushcart/internal/domain/service"
	"pushcart/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSources struct {
	mu        sync.Mutex
	vendors   []*entity.Vendor
	locations []*entity.VendorLocation

	directoryCalls int
	locationCalls  int
	locationErr    error
}

func (f *fakeSources) FindApprovedVendors(ctx context.Context) ([]*entity.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.directoryCalls++

	return f.vendors, nil
}

func (f *fakeSources) FindActiveLocations(ctx context.Context) ([]*entity.VendorLocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.locationCalls++
	if f.locationErr != nil {
		return nil, f.locationErr
	}

	return f.locations, nil
}

func (f *fakeSources) setLocations(locations []*entity.VendorLocation) {
	f.mu.Lock()
	f.locations = locations
	f.mu.Unlock()
}

func (f *fakeSources) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.directoryCalls, f.locationCalls
}

// fakeFeed hands the subscriber callback to the test so events can be
// injected synchronously.
type fakeFeed struct {
	mu           sync.Mutex
	fn           func(*service.LocationEvent)
	unsubscribed bool
}

type fakeFeedSub struct {
	feed *fakeFeed
}

func (s *fakeFeedSub) Unsubscribe() {
	s.feed.mu.Lock()
	s.feed.unsubscribed = true
	s.feed.mu.Unlock()
}

func (f *fakeFeed) SubscribeLocations(ctx context.Context, fn func(*service.LocationEvent)) (service.FeedSubscription, error) {
	f.mu.Lock()
	f.fn = fn
	f.mu.Unlock()

	return &fakeFeedSub{feed: f}, nil
}

func (f *fakeFeed) emit(event *service.LocationEvent) {
	f.mu.Lock()
	fn := f.fn
	f.mu.Unlock()

	fn(event)
}

type fakeOneShotSensor struct {
	sample *service.PositionSample
	err    error
}

func (s *fakeOneShotSensor) Current(ctx context.Context, timeout time.Duration) (*service.PositionSample, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.sample, nil
}

func (s *fakeOneShotSensor) Watch(
	ctx context.Context,
	onSample func(*service.PositionSample),
	onError func(error),
) (service.WatchHandle, error) {
	return nil, errors.New("not implemented")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// freshLocation builds a live row stamped now, so the view's wall-clock
// staleness check sees it as live.
func freshLocation(vendorID uuid.UUID, name string, lat, lon float64) *entity.VendorLocation {
	return &entity.VendorLocation{
		VendorID:    vendorID,
		VendorName:  name,
		Position:    entity.GeoPoint{Latitude: lat, Longitude: lon},
		IsActive:    true,
		LastUpdated: time.Now(),
	}
}

func TestView_InitialSnapshotRanked(t *testing.T) {
	near := approvedVendor("Near Cart")
	far := approvedVendor("Far Cart")
	sources := &fakeSources{
		vendors: []*entity.Vendor{far, near},
		locations: []*entity.VendorLocation{
			freshLocation(near.ID, near.VendorName, 12.9720, 77.5950),
			freshLocation(far.ID, far.VendorName, 12.9250, 77.6033),
		},
	}

	view, err := NewView(context.Background(), Params{
		Directory: sources,
		Locations: sources,
		Feed:      &fakeFeed{},
		Logger:    testLogger(),
		Viewer:    &entity.GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
	})
	require.NoError(t, err)
	defer view.Close()

	got := view.Snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, "Near Cart", got[0].Name)
	assert.Equal(t, "Far Cart", got[1].Name)
}

func TestView_EventCuesLocationRefresh(t *testing.T) {
	vendor := approvedVendor("Dosa Cart")
	sources := &fakeSources{vendors: []*entity.Vendor{vendor}}
	feed := &fakeFeed{}

	view, err := NewView(context.Background(), Params{
		Directory: sources,
		Locations: sources,
		Feed:      feed,
		Logger:    testLogger(),
		Viewer:    &entity.GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
	})
	require.NoError(t, err)
	defer view.Close()

	require.False(t, view.Snapshot()[0].IsLive)

	sources.setLocations([]*entity.VendorLocation{
		freshLocation(vendor.ID, vendor.VendorName, 12.9720, 77.5950),
	})
	feed.emit(&service.LocationEvent{Kind: service.LocationEventUpsert, VendorID: vendor.ID.String()})

	got := view.Snapshot()
	assert.True(t, got[0].IsLive)
	assert.True(t, got[0].HasDistance())

	// Redelivery of the same event is just another refresh.
	feed.emit(&service.LocationEvent{Kind: service.LocationEventUpsert, VendorID: vendor.ID.String()})
	assert.Len(t, view.Snapshot(), 1)

	// The directory is never re-fetched on location events.
	directoryCalls, locationCalls := sources.calls()
	assert.Equal(t, 1, directoryCalls)
	assert.GreaterOrEqual(t, locationCalls, 3)
}

func TestView_RefreshFailureKeepsLastSnapshot(t *testing.T) {
	vendor := approvedVendor("Dosa Cart")
	sources := &fakeSources{
		vendors: []*entity.Vendor{vendor},
		locations: []*entity.VendorLocation{
			freshLocation(vendor.ID, vendor.VendorName, 12.9720, 77.5950),
		},
	}
	feed := &fakeFeed{}

	view, err := NewView(context.Background(), Params{
		Directory: sources,
		Locations: sources,
		Feed:      feed,
		Logger:    testLogger(),
		Viewer:    &entity.GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
	})
	require.NoError(t, err)
	defer view.Close()

	sources.mu.Lock()
	sources.locationErr = errors.New("connection refused")
	sources.mu.Unlock()

	feed.emit(&service.LocationEvent{Kind: service.LocationEventOffline, VendorID: vendor.ID.String()})

	got := view.Snapshot()
	require.Len(t, got, 1)
	assert.True(t, got[0].IsLive)
}

func TestView_SensorFailureDegradesToUnknownDistance(t *testing.T) {
	vendor := approvedVendor("Dosa Cart")
	sources := &fakeSources{
		vendors: []*entity.Vendor{vendor},
		locations: []*entity.VendorLocation{
			freshLocation(vendor.ID, vendor.VendorName, 12.9720, 77.5950),
		},
	}

	view, err := NewView(context.Background(), Params{
		Directory: sources,
		Locations: sources,
		Feed:      &fakeFeed{},
		Logger:    testLogger(),
		Sensor:    &fakeOneShotSensor{err: errors.New("permission denied")},
	})
	require.NoError(t, err)
	defer view.Close()

	got := view.Snapshot()
	require.Len(t, got, 1)
	assert.True(t, got[0].IsLive)
	assert.False(t, got[0].HasDistance())
}

func TestView_CloseMakesEventsNoOps(t *testing.T) {
	vendor := approvedVendor("Dosa Cart")
	sources := &fakeSources{vendors: []*entity.Vendor{vendor}}
	feed := &fakeFeed{}

	view, err := NewView(context.Background(), Params{
		Directory: sources,
		Locations: sources,
		Feed:      feed,
		Logger:    testLogger(),
	})
	require.NoError(t, err)

	view.Close()
	view.Close() // idempotent

	feed.mu.Lock()
	unsubscribed := feed.unsubscribed
	feed.mu.Unlock()
	assert.True(t, unsubscribed)

	_, before := sources.calls()
	feed.emit(&service.LocationEvent{Kind: service.LocationEventUpsert, VendorID: uuid.NewString()})
	_, after := sources.calls()
	assert.Equal(t, before, after)
}

func TestView_OnUpdateReceivesSnapshots(t *testing.T) {
	vendor := approvedVendor("Dosa Cart")
	sources := &fakeSources{vendors: []*entity.Vendor{vendor}}
	feed := &fakeFeed{}

	updates := make(chan []entity.DisplayVendor, 8)
	view, err := NewView(context.Background(), Params{
		Directory: sources,
		Locations: sources,
		Feed:      feed,
		Logger:    testLogger(),
		Viewer:    &entity.GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
		OnUpdate: func(rows []entity.DisplayVendor) {
			updates <- rows
		},
	})
	require.NoError(t, err)
	defer view.Close()

	// Initial recompute publishes the first snapshot.
	first := <-updates
	require.Len(t, first, 1)
	assert.False(t, first[0].IsLive)

	sources.setLocations([]*entity.VendorLocation{
		freshLocation(vendor.ID, vendor.VendorName, 12.9720, 77.5950),
	})
	feed.emit(&service.LocationEvent{Kind: service.LocationEventUpsert, VendorID: vendor.ID.String()})

	second := <-updates
	require.Len(t, second, 1)
	assert.True(t, second[0].IsLive)
}
