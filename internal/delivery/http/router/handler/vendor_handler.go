package handler

import (
	"log/slog"
	"net/http"

	"pushcart/internal/delivery/http/middleware"
	"pushcart/internal/delivery/http/response"
	"pushcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxPhotoBytes = 5 << 20 // 5 MiB

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
	Logger   *slog.Logger
}

// VendorHandler holds dependencies for vendor directory and profile handlers.
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler.
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		vendorUC: params.VendorUC,
		logger:   params.Logger,
	}
}

// Register handles the vendor registration request.
func (h *VendorHandler) Register(c echo.Context) error {
	var input usecase.RegisterVendorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	vendor, err := h.vendorUC.RegisterVendor(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, vendor, "Vendor registered, awaiting approval")
}

// ListApproved handles the public vendor directory request.
func (h *VendorHandler) ListApproved(c echo.Context) error {
	vendors, err := h.vendorUC.ListApprovedVendors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendors, "Vendors retrieved successfully")
}

// ListNearby handles the one-shot ranked directory request. The viewer
// position comes from lat/lng query parameters; without them every distance
// is unknown and the list falls back to name order.
func (h *VendorHandler) ListNearby(c echo.Context) error {
	var query usecase.NearbyQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position parameters")
	}
	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	vendors, err := h.vendorUC.ListNearbyVendors(c.Request().Context(), &query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendors, "Nearby vendors retrieved successfully")
}

// GetProfile handles the public vendor profile request.
func (h *VendorHandler) GetProfile(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	vendor, err := h.vendorUC.GetVendor(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor retrieved successfully")
}

// GetProfileQR serves the vendor's profile QR code as a PNG.
func (h *VendorHandler) GetProfileQR(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	png, err := h.vendorUC.GetVendorProfileQR(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UpdateProfile handles partial updates to the authenticated vendor's profile.
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	vendorID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input usecase.UpdateVendorProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	vendor, err := h.vendorUC.UpdateVendorProfile(c.Request().Context(), vendorID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Profile updated successfully")
}

// UploadPhoto stores the authenticated vendor's profile photo.
func (h *VendorHandler) UploadPhoto(c echo.Context) error {
	vendorID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing photo upload")
	}
	if file.Size > maxPhotoBytes {
		return response.BadRequest(c, "PHOTO_TOO_LARGE", "Photo exceeds the 5 MiB limit")
	}

	src, err := file.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() { _ = src.Close() }()

	contentType := file.Header.Get("Content-Type")
	url, err := h.vendorUC.UploadVendorPhoto(c.Request().Context(), vendorID, contentType, src)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"photo_url": url}, "Photo uploaded successfully")
}

// AnnounceArrivalRequest is the optional custom message for an arrival alert.
type AnnounceArrivalRequest struct {
	Message string `json:"message" validate:"max=200"`
}

// AnnounceArrival pushes an arrival alert to the vendor's subscribed customers.
func (h *VendorHandler) AnnounceArrival(c echo.Context) error {
	vendorID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req AnnounceArrivalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid arrival input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.vendorUC.AnnounceArrival(c.Request().Context(), vendorID, req.Message); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "sent"}, "Arrival alert sent")
}
