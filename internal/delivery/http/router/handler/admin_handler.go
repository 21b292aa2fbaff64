package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pushcart/internal/delivery/http/response"
	"pushcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for moderation handlers.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ListPendingVendors returns vendors awaiting approval, oldest first.
func (h *AdminHandler) ListPendingVendors(c echo.Context) error {
	vendors, err := h.adminUC.ListPendingVendors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendors, "Pending vendors retrieved successfully")
}

// ApproveVendor marks a vendor as approved.
func (h *AdminHandler) ApproveVendor(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	if err := h.adminUC.ApproveVendor(c.Request().Context(), vendorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "approved"}, "Vendor approved successfully")
}

// RemoveVendor soft-deletes a vendor and takes its location offline.
func (h *AdminHandler) RemoveVendor(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	if err := h.adminUC.RemoveVendor(c.Request().Context(), vendorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "removed"}, "Vendor removed successfully")
}

// ListFeedback returns the most recent customer feedback. The limit query
// parameter caps the page; the usecase applies its default when absent.
func (h *AdminHandler) ListFeedback(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit parameter")
		}
		limit = parsed
	}

	feedback, err := h.adminUC.ListFeedback(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedback, "Feedback retrieved successfully")
}
