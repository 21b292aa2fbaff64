// Package realtime carries location-change events from store writers to feed
// subscribers, either in-process or across instances through Pub/Sub.
package realtime

import (
	"context"
	"log/slog"
	"sync"

	"pushcart/internal/domain/service"
	"pushcart/internal/errors"
)

// Per-subscriber buffer. Events are cues to refresh, not deltas, so dropping
// under backpressure only delays a refresh until the next event lands.
const subscriberBuffer = 16

// ErrHubClosed is returned when subscribing to a hub that has shut down.
var ErrHubClosed = errors.New("realtime hub is closed")

// Hub is an in-process fan-out of location-change events. It implements both
// sides of the feed: writers publish into it, proximity views and websocket
// streams subscribe out of it. Each subscriber gets its own pump goroutine so
// one slow consumer cannot stall the rest.
type Hub struct {
	logger *slog.Logger

	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]*hubSubscription
	closed bool
}

type hubSubscription struct {
	hub    *Hub
	id     uint64
	events chan *service.LocationEvent
	done   chan struct{}
	once   sync.Once
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		subs:   make(map[uint64]*hubSubscription),
	}
}

// SubscribeLocations registers a callback for location-change events. The
// callback runs on a dedicated goroutine, sequentially per subscriber, until
// Unsubscribe is called or ctx is cancelled.
func (h *Hub) SubscribeLocations(ctx context.Context, fn func(*service.LocationEvent)) (service.FeedSubscription, error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil, ErrHubClosed
	}
	h.nextID++
	sub := &hubSubscription{
		hub:    h,
		id:     h.nextID,
		events: make(chan *service.LocationEvent, subscriberBuffer),
		done:   make(chan struct{}),
	}
	h.subs[sub.id] = sub
	h.mu.Unlock()

	go sub.pump(ctx, fn)

	return sub, nil
}

// Broadcast delivers an event to every current subscriber. A subscriber with
// a full buffer has the event dropped.
func (h *Hub) Broadcast(event *service.LocationEvent) {
	h.mu.Lock()
	subs := make([]*hubSubscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.events <- event:
		default:
			h.logger.Debug("subscriber buffer full, dropping event",
				slog.Uint64("subscriber_id", sub.id),
				slog.String("vendor_id", event.VendorID),
			)
		}
	}
}

// PublishLocationEvent makes the hub usable directly as the event publisher
// for single-instance deployments.
func (h *Hub) PublishLocationEvent(_ context.Context, event *service.LocationEvent) error {
	h.Broadcast(event)

	return nil
}

// Close detaches all subscribers and rejects new ones.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil
	}
	h.closed = true
	subs := make([]*hubSubscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}

	return nil
}

// Unsubscribe detaches the subscriber and stops its pump goroutine. The
// events channel is never closed; a late Broadcast to a detached subscriber
// just fills a buffer nobody drains.
func (s *hubSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s.id)
		s.hub.mu.Unlock()

		close(s.done)
	})
}

func (s *hubSubscription) pump(ctx context.Context, fn func(*service.LocationEvent)) {
	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			s.Unsubscribe()

			return
		case event := <-s.events:
			fn(event)
		}
	}
}
