package handler

import (
	"log/slog"
	"net/http"

	"pushcart/internal/delivery/http/middleware"
	"pushcart/internal/delivery/http/response"
	"pushcart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for vendor location handlers.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// PublishLocation handles one beacon position publish for the authenticated
// vendor. The beacon agent calls this every publish tick, so the handler is
// strictly upsert-and-return.
func (h *LocationHandler) PublishLocation(c echo.Context) error {
	vendorID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input usecase.PublishLocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	location, err := h.locationUC.PublishLocation(c.Request().Context(), vendorID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location published successfully")
}

// GoOffline clears the authenticated vendor's live flag.
func (h *LocationHandler) GoOffline(c echo.Context) error {
	vendorID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	if err := h.locationUC.GoOffline(c.Request().Context(), vendorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "offline"}, "Vendor marked offline")
}

// GetLocation returns the authenticated vendor's last published location.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	vendorID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	location, err := h.locationUC.GetVendorLocation(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location retrieved successfully")
}
