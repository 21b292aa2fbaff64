package realtime

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pushcart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()

	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type eventRecorder struct {
	mu     sync.Mutex
	events []*service.LocationEvent
}

func (r *eventRecorder) record(event *service.LocationEvent) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

func (r *eventRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events)
}

func (r *eventRecorder) last() *service.LocationEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.events) == 0 {
		return nil
	}

	return r.events[len(r.events)-1]
}

func TestHub_BroadcastReachesAllSubscribers(t *testing.T) {
	hub := newTestHub(t)
	defer hub.Close()

	first := &eventRecorder{}
	second := &eventRecorder{}

	_, err := hub.SubscribeLocations(context.Background(), first.record)
	require.NoError(t, err)
	_, err = hub.SubscribeLocations(context.Background(), second.record)
	require.NoError(t, err)

	hub.Broadcast(&service.LocationEvent{
		Kind:     service.LocationEventUpsert,
		VendorID: "vendor-1",
		Latitude: 12.9716, Longitude: 77.5946,
	})

	assert.Eventually(t, func() bool {
		return first.count() == 1 && second.count() == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "vendor-1", first.last().VendorID)
}

func TestHub_UnsubscribedReceivesNothing(t *testing.T) {
	hub := newTestHub(t)
	defer hub.Close()

	kept := &eventRecorder{}
	dropped := &eventRecorder{}

	_, err := hub.SubscribeLocations(context.Background(), kept.record)
	require.NoError(t, err)
	sub, err := hub.SubscribeLocations(context.Background(), dropped.record)
	require.NoError(t, err)

	sub.Unsubscribe()
	sub.Unsubscribe() // safe to repeat

	hub.Broadcast(&service.LocationEvent{Kind: service.LocationEventOffline, VendorID: "vendor-2"})

	assert.Eventually(t, func() bool {
		return kept.count() == 1
	}, time.Second, 5*time.Millisecond)
	assert.Zero(t, dropped.count())
}

func TestHub_ContextCancelDetaches(t *testing.T) {
	hub := newTestHub(t)
	defer hub.Close()

	rec := &eventRecorder{}
	ctx, cancel := context.WithCancel(context.Background())

	_, err := hub.SubscribeLocations(ctx, rec.record)
	require.NoError(t, err)

	cancel()

	assert.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()

		return len(hub.subs) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestHub_PublishDelegatesToBroadcast(t *testing.T) {
	hub := newTestHub(t)
	defer hub.Close()

	rec := &eventRecorder{}
	_, err := hub.SubscribeLocations(context.Background(), rec.record)
	require.NoError(t, err)

	require.NoError(t, hub.PublishLocationEvent(context.Background(), &service.LocationEvent{
		Kind:     service.LocationEventUpsert,
		VendorID: "vendor-3",
	}))

	assert.Eventually(t, func() bool {
		return rec.count() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestHub_SubscribeAfterCloseFails(t *testing.T) {
	hub := newTestHub(t)
	require.NoError(t, hub.Close())
	require.NoError(t, hub.Close()) // idempotent

	_, err := hub.SubscribeLocations(context.Background(), func(*service.LocationEvent) {})
	assert.ErrorIs(t, err, ErrHubClosed)
}
