package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"pushcart/config"
	"pushcart/internal/delivery/http/response"
	"pushcart/internal/domain/entity"
	"pushcart/internal/domain/repository"
	"pushcart/internal/domain/service"
	"pushcart/internal/proximity"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamPingInterval = 30 * time.Second
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	VendorRepo   repository.VendorRepository
	LocationRepo repository.VendorLocationRepository
	Feed         service.LocationFeed
}

// StreamHandler upgrades customer connections to websockets and streams each
// one its own live ranked vendor list.
type StreamHandler struct {
	cfg          *config.Config
	logger       *slog.Logger
	vendorRepo   repository.VendorRepository
	locationRepo repository.VendorLocationRepository
	feed         service.LocationFeed
	upgrader     websocket.Upgrader
}

// NewStreamHandler is the constructor for StreamHandler.
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		cfg:          params.Config,
		logger:       params.Logger,
		vendorRepo:   params.VendorRepo,
		locationRepo: params.LocationRepo,
		feed:         params.Feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The browser app runs on a separate origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// StreamVendors handles GET /ws/vendors. Optional lat/lng query parameters
// set the viewer position; without them the stream carries no distances and
// ranks by name.
func (h *StreamHandler) StreamVendors(c echo.Context) error {
	viewer, err := parseViewer(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid position parameters")
	}

	// Latest-wins mailbox between the view's recompute and the writer
	// goroutine. OnUpdate runs under the view lock and must not block.
	updates := make(chan []entity.DisplayVendor, 1)
	pushLatest := func(snapshot []entity.DisplayVendor) {
		for {
			select {
			case updates <- snapshot:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	}

	ctx := c.Request().Context()

	var staleAfter, viewerTimeout time.Duration
	if h.cfg.Proximity != nil {
		staleAfter = h.cfg.Proximity.StaleAfter
		viewerTimeout = h.cfg.Proximity.ViewerPositionTimeout
	}

	view, err := proximity.NewView(ctx, proximity.Params{
		Directory:             h.vendorRepo,
		Locations:             h.locationRepo,
		Feed:                  h.feed,
		Logger:                h.logger,
		Viewer:                viewer,
		ViewerPositionTimeout: viewerTimeout,
		StaleAfter:            staleAfter,
		OnUpdate:              pushLatest,
	})
	if err != nil {
		return response.InternalServerError(c, "STREAM_SETUP_FAILED", "Failed to prepare vendor stream")
	}
	defer view.Close()

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote its own error response.
		return nil
	}
	defer func() { _ = conn.Close() }()

	// Reader goroutine: the client sends nothing we care about, but reading
	// is what surfaces close frames and dead peers.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := h.writeSnapshot(conn, view.Snapshot()); err != nil {
		return nil
	}

	ticker := time.NewTicker(streamPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return nil
		case snapshot := <-updates:
			if err := h.writeSnapshot(conn, snapshot); err != nil {
				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}

func (h *StreamHandler) writeSnapshot(conn *websocket.Conn, snapshot []entity.DisplayVendor) error {
	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	if err := conn.WriteJSON(snapshot); err != nil {
		h.logger.Debug("vendor stream write failed", slog.Any("error", err))

		return err
	}

	return nil
}

// parseViewer reads the optional lat/lng query parameters.
func parseViewer(c echo.Context) (*entity.GeoPoint, error) {
	latRaw := c.QueryParam("lat")
	lngRaw := c.QueryParam("lng")
	if latRaw == "" && lngRaw == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, err
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return nil, err
	}

	point := entity.GeoPoint{Latitude: lat, Longitude: lng}
	if !point.Valid() {
		return nil, echo.ErrBadRequest
	}

	return &point, nil
}
