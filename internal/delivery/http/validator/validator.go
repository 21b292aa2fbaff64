// Package validator plugs go-playground/validator into Echo's binding flow.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates an echo.Validator backed by go-playground/validator struct tags.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the struct's validate tags, returning a 400 HTTPError so
// Echo reports validation failures as client errors.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
