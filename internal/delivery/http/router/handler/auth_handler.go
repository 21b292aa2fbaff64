// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"pushcart/internal/delivery/http/response"
	"pushcart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for registration and login handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterCustomer handles the customer registration request.
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var input usecase.RegisterCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	customer, err := h.authUC.RegisterCustomer(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer registered successfully")
}

// LoginVendor handles the vendor login request.
func (h *AuthHandler) LoginVendor(c echo.Context) error {
	return h.login(c, h.authUC.LoginVendor)
}

// LoginCustomer handles the customer login request.
func (h *AuthHandler) LoginCustomer(c echo.Context) error {
	return h.login(c, h.authUC.LoginCustomer)
}

// LoginAdmin handles the admin login request.
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	return h.login(c, h.authUC.LoginAdmin)
}

func (h *AuthHandler) login(c echo.Context, fn func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := fn(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
