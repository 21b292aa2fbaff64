package service

import (
	"context"
	"time"

	"pushcart/internal/domain/entity"
)

// PositionSample is one fix from a location sensor.
type PositionSample struct {
	Position   entity.GeoPoint
	AccuracyM  float64 // Horizontal accuracy in meters, 0 when unknown.
	ObservedAt time.Time
}

// WatchHandle cancels a continuous position watch.
type WatchHandle interface {
	// Stop cancels the watch. Safe to call more than once.
	Stop()
}

// LocationSensor abstracts the device position source. Implementations must
// deliver fresh fixes only (no cached positions); a sample's ObservedAt is
// the time the fix was taken.
type LocationSensor interface {
	// Current returns a single fresh fix, failing after the timeout.
	Current(ctx context.Context, timeout time.Duration) (*PositionSample, error)

	// Watch starts continuous updates. onSample is invoked for every fix
	// until the returned handle is stopped; onError reports non-fatal
	// sensor trouble without terminating the watch.
	Watch(ctx context.Context, onSample func(*PositionSample), onError func(error)) (WatchHandle, error)
}
