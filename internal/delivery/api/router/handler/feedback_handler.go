package handler

import (
	"log/slog"

	"agriassist/internal/delivery/api/response"
	"agriassist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
	Logger     *slog.Logger
}

// FeedbackHandler serves the contact form.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
	logger     *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: params.FeedbackUC,
		logger:     params.Logger,
	}
}

// SubmitFeedbackRequest represents a contact-form submission
type SubmitFeedbackRequest struct {
	Type    string  `json:"type" validate:"required"`
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Message string  `json:"message" validate:"required"`
}

// SubmitFeedback handles POST /api/feedback
func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	var req SubmitFeedbackRequest
	if err := bindAndValidate(c, h.logger, &req); err != nil {
		return err
	}

	feedback, err := h.feedbackUC.SubmitFeedback(c.Request().Context(), usecase.FeedbackInput{
		Type:    req.Type,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return response.Created(c, feedback)
}

// ListFeedback handles GET /api/feedback
func (h *FeedbackHandler) ListFeedback(c echo.Context) error {
	return response.OK(c, h.feedbackUC.ListFeedback(c.Request().Context()))
}
