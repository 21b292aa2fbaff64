// Package sensor provides position sources for the beacon agent. Hardware GPS
// is out of reach for a headless process, so the sensors here either pin the
// cart to a configured stall position or replay a recorded track.
package sensor

import (
	"context"
	"sync"
	"time"

	"pushcart/internal/domain/entity"
	"pushcart/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultWatchInterval = 5 * time.Second

// ErrInvalidPosition is returned when a sensor is configured with coordinates
// outside the valid latitude/longitude ranges.
var ErrInvalidPosition = errors.New("sensor position out of range")

type staticSensor struct {
	position entity.GeoPoint
	interval time.Duration
}

// NewStaticSensor returns a sensor fixed at one position, for vendors who
// park at a known stall. Watch re-emits the position every interval so the
// publisher's freshness window keeps sliding.
func NewStaticSensor(position entity.GeoPoint, interval time.Duration) (service.LocationSensor, error) {
	if !position.Valid() {
		return nil, errors.Wrap(ErrInvalidPosition, "failed to create static sensor")
	}
	if interval <= 0 {
		interval = defaultWatchInterval
	}

	return &staticSensor{position: position, interval: interval}, nil
}

func (s *staticSensor) Current(_ context.Context, _ time.Duration) (*service.PositionSample, error) {
	return s.sample(), nil
}

func (s *staticSensor) Watch(ctx context.Context, onSample func(*service.PositionSample), _ func(error)) (service.WatchHandle, error) {
	handle := newWatchHandle()

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		// First fix immediately so the publisher never waits a full
		// interval before its opening tick.
		onSample(s.sample())

		for {
			select {
			case <-handle.done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				onSample(s.sample())
			}
		}
	}()

	return handle, nil
}

func (s *staticSensor) sample() *service.PositionSample {
	return &service.PositionSample{
		Position:   s.position,
		ObservedAt: time.Now(),
	}
}

// watchHandle implements service.WatchHandle with idempotent Stop.
type watchHandle struct {
	once sync.Once
	done chan struct{}
}

func newWatchHandle() *watchHandle {
	return &watchHandle{done: make(chan struct{})}
}

func (h *watchHandle) Stop() {
	h.once.Do(func() { close(h.done) })
}
