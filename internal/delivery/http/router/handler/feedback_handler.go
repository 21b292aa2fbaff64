package handler

import (
	"log/slog"
	"net/http"

	"pushcart/internal/delivery/http/response"
	"pushcart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
	Logger     *slog.Logger
}

// FeedbackHandler holds dependencies for the public feedback handler.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
	logger     *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler.
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: params.FeedbackUC,
		logger:     params.Logger,
	}
}

// SubmitFeedback records a customer feedback submission. No login required;
// residents without accounts can still report problems.
func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	var input usecase.SubmitFeedbackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	feedback, err := h.feedbackUC.SubmitFeedback(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, feedback, "Feedback submitted successfully")
}
