package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pushcart/config"
	"pushcart/internal/domain/service"
	"pushcart/internal/infra/realtime"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	handler *PushHandler
	hub     *realtime.Hub
}

func createTestPushHandler(t *testing.T) pushHandlerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := realtime.NewHub(logger)
	t.Cleanup(func() { _ = hub.Close() })

	// No PubSub config: push auth verification stays off.
	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: logger,
		Hub:    hub,
	})

	return pushHandlerFixtures{handler: h, hub: hub}
}

// pushEnvelope wraps a location event the way Pub/Sub push delivery does.
func pushEnvelope(t *testing.T, event *service.LocationEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg realtime.PubSubPushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/local/subscriptions/vendor-location-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func postPush(h *PushHandler, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, h.HandlePush(c)
}

func subscribeEvents(t *testing.T, hub *realtime.Hub) <-chan *service.LocationEvent {
	t.Helper()

	received := make(chan *service.LocationEvent, 8)
	_, err := hub.SubscribeLocations(context.Background(), func(event *service.LocationEvent) {
		received <- event
	})
	require.NoError(t, err)

	return received
}

func TestPushHandler_HandlePush_RebroadcastsToHub(t *testing.T) {
	fx := createTestPushHandler(t)
	received := subscribeEvents(t, fx.hub)

	vendorID := uuid.New().String()
	body := pushEnvelope(t, &service.LocationEvent{
		Kind:       service.LocationEventUpsert,
		VendorID:   vendorID,
		VendorName: "Ravi Vegetables",
		Latitude:   12.9279,
		Longitude:  77.6271,
	}, nil)

	rec, err := postPush(fx.handler, body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case event := <-received:
		assert.Equal(t, service.LocationEventUpsert, event.Kind)
		assert.Equal(t, vendorID, event.VendorID)
		assert.Equal(t, "Ravi Vegetables", event.VendorName)
		assert.NotEmpty(t, event.RequestID, "a request id is always attached")
	case <-time.After(2 * time.Second):
		t.Fatal("event was not re-broadcast to the hub")
	}
}

func TestPushHandler_HandlePush_RequestIDFromAttributes(t *testing.T) {
	fx := createTestPushHandler(t)
	received := subscribeEvents(t, fx.hub)

	body := pushEnvelope(t, &service.LocationEvent{
		Kind:     service.LocationEventOffline,
		VendorID: uuid.New().String(),
	}, map[string]string{"request_id": "req-42"})

	rec, err := postPush(fx.handler, body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case event := <-received:
		assert.Equal(t, "req-42", event.RequestID)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not re-broadcast to the hub")
	}
}

func TestPushHandler_HandlePush_MalformedEnvelope(t *testing.T) {
	fx := createTestPushHandler(t)

	rec, err := postPush(fx.handler, "not json")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64Data(t *testing.T) {
	fx := createTestPushHandler(t)

	var msg realtime.PubSubPushMessage
	msg.Message.Data = "%%% not base64 %%%"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	rec, err := postPush(fx.handler, string(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_InvalidEventIsAcked(t *testing.T) {
	fx := createTestPushHandler(t)
	received := subscribeEvents(t, fx.hub)

	// Unknown vendor id: not retryable, so the handler acks with 200 to
	// stop redelivery, but nothing reaches the hub.
	body := pushEnvelope(t, &service.LocationEvent{
		Kind:     service.LocationEventUpsert,
		VendorID: "not-a-uuid",
	}, nil)

	rec, err := postPush(fx.handler, body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case <-received:
		t.Fatal("invalid event must not be broadcast")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPushHandler_HandlePush_UnknownKindIsAcked(t *testing.T) {
	fx := createTestPushHandler(t)
	received := subscribeEvents(t, fx.hub)

	body := pushEnvelope(t, &service.LocationEvent{
		Kind:     "teleport",
		VendorID: uuid.New().String(),
	}, nil)

	rec, err := postPush(fx.handler, body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case <-received:
		t.Fatal("unknown event kind must not be broadcast")
	case <-time.After(100 * time.Millisecond):
	}
}
