package handler

import (
	"log/slog"
	"strconv"
	"time"

	"agriassist/internal/delivery/api/response"
	"agriassist/internal/domain/entity"
	domainerrors "agriassist/internal/domain/errors"
	"agriassist/internal/domain/repository"
	"agriassist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdvisoryHandlerParams holds dependencies for AdvisoryHandler, injected by Fx.
type AdvisoryHandlerParams struct {
	fx.In

	AdvisoryUC usecase.AdvisoryUsecase
	Logger     *slog.Logger
}

// AdvisoryHandler serves the expert directory and agronomy alerts.
type AdvisoryHandler struct {
	advisoryUC usecase.AdvisoryUsecase
	logger     *slog.Logger
}

// NewAdvisoryHandler is the constructor for AdvisoryHandler
func NewAdvisoryHandler(params AdvisoryHandlerParams) *AdvisoryHandler {
	return &AdvisoryHandler{
		advisoryUC: params.AdvisoryUC,
		logger:     params.Logger,
	}
}

// CreateExpertRequest represents the request body for adding an expert
type CreateExpertRequest struct {
	Name           string   `json:"name" validate:"required"`
	Specialization []string `json:"specialization"`
	District       *string  `json:"district"`
	Languages      []string `json:"languages"`
	ContactEmail   *string  `json:"contact_email" validate:"omitempty,email"`
	ContactPhone   *string  `json:"contact_phone"`
	AvatarURL      *string  `json:"avatar_url"`
	Verified       *bool    `json:"verified"`
}

// CreateAlertRequest represents the request body for publishing an alert.
// Any published_at supplied by the caller is ignored.
type CreateAlertRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Type        string     `json:"type" validate:"required"`
	Severity    *string    `json:"severity"`
	Region      *string    `json:"region"`
	CropIDs     []string   `json:"crop_ids"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// ListExperts handles GET /api/experts?district=&specialization=&languages=
func (h *AdvisoryHandler) ListExperts(c echo.Context) error {
	filter := repository.ExpertFilter{
		District:       c.QueryParam("district"),
		Specialization: c.QueryParam("specialization"),
		Language:       c.QueryParam("languages"),
	}

	return response.OK(c, h.advisoryUC.ListExperts(c.Request().Context(), filter))
}

// CreateExpert handles POST /api/experts
func (h *AdvisoryHandler) CreateExpert(c echo.Context) error {
	var req CreateExpertRequest
	if err := bindAndValidate(c, h.logger, &req); err != nil {
		return err
	}

	expert, err := h.advisoryUC.CreateExpert(c.Request().Context(), entity.Expert{
		Name:           req.Name,
		Specialization: req.Specialization,
		District:       req.District,
		Languages:      req.Languages,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		AvatarURL:      req.AvatarURL,
		Verified:       req.Verified,
	})
	if err != nil {
		return err
	}

	return response.Created(c, expert)
}

// ListAlerts handles GET /api/alerts[?active=true]
func (h *AdvisoryHandler) ListAlerts(c echo.Context) error {
	activeOnly := false
	if raw := c.QueryParam("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("active must be a boolean")
		}
		activeOnly = parsed
	}

	return response.OK(c, h.advisoryUC.ListAlerts(c.Request().Context(), activeOnly))
}

// PublishAlert handles POST /api/alerts
func (h *AdvisoryHandler) PublishAlert(c echo.Context) error {
	var req CreateAlertRequest
	if err := bindAndValidate(c, h.logger, &req); err != nil {
		return err
	}

	alert, err := h.advisoryUC.PublishAlert(c.Request().Context(), entity.Alert{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Severity:    req.Severity,
		Region:      req.Region,
		CropIDs:     req.CropIDs,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		return err
	}

	return response.Created(c, alert)
}
