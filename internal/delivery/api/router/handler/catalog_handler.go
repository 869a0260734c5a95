package handler

import (
	"log/slog"

	"agriassist/internal/delivery/api/response"
	"agriassist/internal/domain/entity"
	"agriassist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the crop reference list and the disease library.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateCropRequest represents the request body for adding a crop
type CreateCropRequest struct {
	Name           string  `json:"name" validate:"required"`
	ScientificName *string `json:"scientific_name"`
	Category       string  `json:"category" validate:"required"`
	ImageURL       *string `json:"image_url"`
	Description    *string `json:"description"`
}

// CreateDiseaseRequest represents the request body for adding a disease
type CreateDiseaseRequest struct {
	Name              string   `json:"name" validate:"required"`
	CropID            *string  `json:"crop_id"`
	Symptoms          []string `json:"symptoms"`
	Causes            *string  `json:"causes"`
	OrganicTreatment  *string  `json:"organic_treatment"`
	ChemicalTreatment *string  `json:"chemical_treatment"`
	Prevention        *string  `json:"prevention"`
	ImageURLs         []string `json:"image_urls"`
	Severity          *string  `json:"severity"`
}

// ListCrops handles GET /api/crops, optionally filtered by ?category=
func (h *CatalogHandler) ListCrops(c echo.Context) error {
	return response.OK(c, h.catalogUC.ListCrops(c.Request().Context(), c.QueryParam("category")))
}

// GetCrop handles GET /api/crops/:id
func (h *CatalogHandler) GetCrop(c echo.Context) error {
	crop, ok := h.catalogUC.GetCrop(c.Request().Context(), c.Param("id"))
	if !ok {
		return notFound(c, "crop")
	}

	return response.OK(c, crop)
}

// CreateCrop handles POST /api/crops
func (h *CatalogHandler) CreateCrop(c echo.Context) error {
	var req CreateCropRequest
	if err := bindAndValidate(c, h.logger, &req); err != nil {
		return err
	}

	crop, err := h.catalogUC.CreateCrop(c.Request().Context(), entity.Crop{
		Name:           req.Name,
		ScientificName: req.ScientificName,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		Description:    req.Description,
	})
	if err != nil {
		return err
	}

	return response.Created(c, crop)
}

// ListDiseases handles GET /api/diseases, optionally filtered by ?cropId=
func (h *CatalogHandler) ListDiseases(c echo.Context) error {
	return response.OK(c, h.catalogUC.ListDiseases(c.Request().Context(), c.QueryParam("cropId")))
}

// GetDisease handles GET /api/diseases/:id
func (h *CatalogHandler) GetDisease(c echo.Context) error {
	disease, ok := h.catalogUC.GetDisease(c.Request().Context(), c.Param("id"))
	if !ok {
		return notFound(c, "disease")
	}

	return response.OK(c, disease)
}

// CreateDisease handles POST /api/diseases
func (h *CatalogHandler) CreateDisease(c echo.Context) error {
	var req CreateDiseaseRequest
	if err := bindAndValidate(c, h.logger, &req); err != nil {
		return err
	}

	disease, err := h.catalogUC.CreateDisease(c.Request().Context(), entity.Disease{
		Name:              req.Name,
		CropID:            emptyToNil(req.CropID),
		Symptoms:          req.Symptoms,
		Causes:            req.Causes,
		OrganicTreatment:  req.OrganicTreatment,
		ChemicalTreatment: req.ChemicalTreatment,
		Prevention:        req.Prevention,
		ImageURLs:         req.ImageURLs,
		Severity:          req.Severity,
	})
	if err != nil {
		return err
	}

	return response.Created(c, disease)
}
