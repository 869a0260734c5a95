package impl

import (
	"context"
	"log/slog"

	deliverycontext "agriassist/internal/delivery/context"
	"agriassist/internal/domain/entity"
	"agriassist/internal/domain/repository"
	"agriassist/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	cropRepo    repository.CropRepository
	diseaseRepo repository.DiseaseRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CropRepo    repository.CropRepository
	DiseaseRepo repository.DiseaseRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		cropRepo:    params.CropRepo,
		diseaseRepo: params.DiseaseRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListCrops(ctx context.Context, category string) []*entity.Crop {
	if category == "" {
		return srv.cropRepo.ListCrops(ctx)
	}

	return srv.cropRepo.ListCropsByCategory(ctx, category)
}

func (srv *catalogService) GetCrop(ctx context.Context, id string) (*entity.Crop, bool) {
	return srv.cropRepo.FindCropByID(ctx, id)
}

func (srv *catalogService) CreateCrop(ctx context.Context, crop entity.Crop) (*entity.Crop, error) {
	created, err := srv.cropRepo.CreateCrop(ctx, crop)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create crop")
	}

	srv.log(ctx).Info("Crop created", slog.String("cropID", created.ID), slog.String("name", created.Name))

	return created, nil
}

func (srv *catalogService) ListDiseases(ctx context.Context, cropID string) []*entity.Disease {
	if cropID == "" {
		return srv.diseaseRepo.ListDiseases(ctx)
	}

	return srv.diseaseRepo.ListDiseasesByCrop(ctx, cropID)
}

func (srv *catalogService) GetDisease(ctx context.Context, id string) (*entity.Disease, bool) {
	return srv.diseaseRepo.FindDiseaseByID(ctx, id)
}

func (srv *catalogService) CreateDisease(ctx context.Context, disease entity.Disease) (*entity.Disease, error) {
	created, err := srv.diseaseRepo.CreateDisease(ctx, disease)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create disease")
	}

	srv.log(ctx).Info("Disease created", slog.String("diseaseID", created.ID), slog.String("name", created.Name))

	return created, nil
}
