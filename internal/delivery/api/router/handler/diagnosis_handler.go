package handler

import (
	"log/slog"

	"agriassist/internal/delivery/api/response"
	"agriassist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiagnosisHandlerParams holds dependencies for DiagnosisHandler, injected by Fx.
type DiagnosisHandlerParams struct {
	fx.In

	DiagnosisUC usecase.DiagnosisUsecase
	Logger      *slog.Logger
}

// DiagnosisHandler serves crop diagnosis requests.
type DiagnosisHandler struct {
	diagnosisUC usecase.DiagnosisUsecase
	logger      *slog.Logger
}

// NewDiagnosisHandler is the constructor for DiagnosisHandler
func NewDiagnosisHandler(params DiagnosisHandlerParams) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisUC: params.DiagnosisUC,
		logger:      params.Logger,
	}
}

// CreateDiagnosisRequest represents the request body for a diagnosis.
// ImageURL is a data URL or bare base64 image.
type CreateDiagnosisRequest struct {
	ImageURL *string  `json:"image_url"`
	CropID   *string  `json:"crop_id"`
	Symptoms []string `json:"symptoms"`
	UserID   *string  `json:"user_id"`
}

// CreateDiagnosis handles POST /api/diagnoses
func (h *DiagnosisHandler) CreateDiagnosis(c echo.Context) error {
	var req CreateDiagnosisRequest
	if err := bindAndValidate(c, h.logger, &req); err != nil {
		return err
	}

	diagnosis, err := h.diagnosisUC.CreateDiagnosis(c.Request().Context(), usecase.DiagnosisInput{
		ImageURL: emptyToNil(req.ImageURL),
		CropID:   emptyToNil(req.CropID),
		Symptoms: req.Symptoms,
		UserID:   emptyToNil(req.UserID),
	})
	if err != nil {
		return err
	}

	return response.Created(c, diagnosis)
}

// ListDiagnoses handles GET /api/diagnoses, optionally filtered by ?userId=
func (h *DiagnosisHandler) ListDiagnoses(c echo.Context) error {
	return response.OK(c, h.diagnosisUC.ListDiagnoses(c.Request().Context(), c.QueryParam("userId")))
}

// GetDiagnosis handles GET /api/diagnoses/:id
func (h *DiagnosisHandler) GetDiagnosis(c echo.Context) error {
	diagnosis, ok := h.diagnosisUC.GetDiagnosis(c.Request().Context(), c.Param("id"))
	if !ok {
		return notFound(c, "diagnosis")
	}

	return response.OK(c, diagnosis)
}
