// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"pushcart/internal/domain/entity"
)

// LocationEventKind classifies a change to the vendor-locations store.
type LocationEventKind string

const (
	// LocationEventUpsert signals an inserted or updated location row.
	LocationEventUpsert LocationEventKind = "upsert"
	// LocationEventOffline signals a row whose is_active flag was cleared.
	LocationEventOffline LocationEventKind = "offline"
)

// LocationEvent is a change notification for one vendor's location row.
// Delivery is at-least-once and events may be coalesced or redelivered, so
// consumers must treat an event only as a cue to refresh their cached state,
// never as an authoritative delta.
type LocationEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing.
	Kind       LocationEventKind `json:"kind"`
	VendorID   string            `json:"vendor_id"`
	VendorName string            `json:"vendor_name,omitempty"`
	Latitude   float64           `json:"latitude,omitempty"`
	Longitude  float64           `json:"longitude,omitempty"`
}

// Snapshot returns the embedded position, if the event carried one.
func (e *LocationEvent) Snapshot() (entity.GeoPoint, bool) {
	if e.Kind != LocationEventUpsert {
		return entity.GeoPoint{}, false
	}
	p := entity.GeoPoint{Latitude: e.Latitude, Longitude: e.Longitude}

	return p, p.Valid()
}

// LocationEventPublisher defines the interface for publishing location-change
// events after a store write.
type LocationEventPublisher interface {
	// PublishLocationEvent publishes a change event for async fan-out.
	PublishLocationEvent(ctx context.Context, event *LocationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}

// FeedSubscription is a handle to an active feed subscription.
type FeedSubscription interface {
	// Unsubscribe detaches the subscriber. Safe to call more than once.
	Unsubscribe()
}

// LocationFeed is the subscribe side of the change-notification stream.
// Callbacks run sequentially per subscriber; a subscriber that has
// unsubscribed receives no further events.
type LocationFeed interface {
	// SubscribeLocations registers a callback for location-change events.
	SubscribeLocations(ctx context.Context, fn func(*LocationEvent)) (FeedSubscription, error)
}
