package proximity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pushcart/internal/domain/entity"
	"pushcart/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultViewerPositionTimeout = 5 * time.Second
	// Three missed 7s publish ticks. A location row older than this is
	// treated as offline even when its is_active flag never got cleared.
	defaultStaleAfter = 21 * time.Second
)

// DirectorySource supplies the approved, active vendor directory.
type DirectorySource interface {
	FindApprovedVendors(ctx context.Context) ([]*entity.Vendor, error)
}

// LocationSource supplies the current active location set.
type LocationSource interface {
	FindActiveLocations(ctx context.Context) ([]*entity.VendorLocation, error)
}

// Params configures a View.
type Params struct {
	Directory DirectorySource
	Locations LocationSource
	Feed      service.LocationFeed
	Logger    *slog.Logger

	// Viewer is the customer's position when the caller already knows it
	// (query parameters on the websocket upgrade). When nil and Sensor is
	// set, the view takes a one-shot reading at construction.
	Viewer *entity.GeoPoint
	Sensor service.LocationSensor

	// ViewerPositionTimeout bounds the one-shot sensor read. Zero means 5s.
	ViewerPositionTimeout time.Duration

	// StaleAfter is the read-side staleness cutoff. Zero means 21s.
	StaleAfter time.Duration

	// OnUpdate, when set, receives every new snapshot after a recompute.
	// It runs with the view lock held, so it must neither block nor call
	// back into the view; hand the slice to a channel and return.
	OnUpdate func([]entity.DisplayVendor)
}

// View is one customer's live ranked vendor list. It caches the directory,
// the active location set and the viewer position, recomputes the ranking on
// every feed event, and swaps the published snapshot atomically.
type View struct {
	directory  DirectorySource
	locations  LocationSource
	logger     *slog.Logger
	staleAfter time.Duration
	onUpdate   func([]entity.DisplayVendor)

	mu       sync.Mutex
	viewer   *entity.GeoPoint
	vendors  []*entity.Vendor
	live     []*entity.VendorLocation
	snapshot []entity.DisplayVendor
	closed   bool
	sub      service.FeedSubscription
}

// NewView constructs the view, resolves the viewer position, loads the
// initial state and subscribes to the location feed. A viewer position
// failure degrades the view to distance-unknown ordering; a failure to load
// state or subscribe is fatal.
func NewView(ctx context.Context, params Params) (*View, error) {
	if params.ViewerPositionTimeout <= 0 {
		params.ViewerPositionTimeout = defaultViewerPositionTimeout
	}
	if params.StaleAfter <= 0 {
		params.StaleAfter = defaultStaleAfter
	}

	v := &View{
		directory:  params.Directory,
		locations:  params.Locations,
		logger:     params.Logger,
		staleAfter: params.StaleAfter,
		onUpdate:   params.OnUpdate,
		viewer:     params.Viewer,
	}

	if v.viewer == nil && params.Sensor != nil {
		sample, err := params.Sensor.Current(ctx, params.ViewerPositionTimeout)
		if err != nil {
			v.logger.Warn("viewer position unavailable, distances will be unknown",
				slog.Any("error", err),
			)
		} else {
			v.viewer = &sample.Position
		}
	}

	vendors, err := v.directory.FindApprovedVendors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vendor directory")
	}
	live, err := v.locations.FindActiveLocations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active locations")
	}

	v.mu.Lock()
	v.vendors = vendors
	v.live = live
	v.recomputeLocked()
	v.mu.Unlock()

	if params.Feed != nil {
		sub, err := params.Feed.SubscribeLocations(ctx, func(event *service.LocationEvent) {
			v.handleEvent(ctx, event)
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to subscribe to location feed")
		}
		v.mu.Lock()
		if v.closed {
			// Lost the race against Close.
			v.mu.Unlock()
			sub.Unsubscribe()

			return nil, errors.New("view closed during construction")
		}
		v.sub = sub
		v.mu.Unlock()
	}

	return v, nil
}

// Snapshot returns the current ranked list. The returned slice is a copy.
func (v *View) Snapshot() []entity.DisplayVendor {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]entity.DisplayVendor, len(v.snapshot))
	copy(out, v.snapshot)

	return out
}

// RefreshDirectory re-fetches the vendor directory. The feed only cues
// location refreshes; callers invoke this when the directory itself changed
// (a new approval, say).
func (v *View) RefreshDirectory(ctx context.Context) error {
	vendors, err := v.directory.FindApprovedVendors(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to refresh vendor directory")
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	v.vendors = vendors
	v.recomputeLocked()

	return nil
}

// Close unsubscribes from the feed. Events already in flight become no-ops.
func (v *View) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()

		return
	}
	v.closed = true
	sub := v.sub
	v.sub = nil
	v.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

// handleEvent treats any feed event purely as a cue: it re-fetches the
// authoritative active set and recomputes. Redelivered or coalesced events
// just repeat the same refresh.
func (v *View) handleEvent(ctx context.Context, event *service.LocationEvent) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()

		return
	}
	v.mu.Unlock()

	live, err := v.locations.FindActiveLocations(ctx)
	if err != nil {
		v.logger.Warn("failed to refresh active locations",
			slog.String("vendor_id", event.VendorID),
			slog.Any("error", err),
		)

		return
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()

		return
	}
	v.live = live
	v.recomputeLocked()
	v.mu.Unlock()
}

func (v *View) recomputeLocked() {
	v.snapshot = Rank(v.vendors, v.live, v.viewer, time.Now(), v.staleAfter)

	if v.onUpdate != nil {
		out := make([]entity.DisplayVendor, len(v.snapshot))
		copy(out, v.snapshot)
		v.onUpdate(out)
	}
}
