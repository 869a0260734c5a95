package usecase

import (
	"context"

	"agriassist/internal/domain/entity"
)

// CatalogUsecase exposes the crop and disease reference library.
type CatalogUsecase interface {
	// ListCrops returns all crops, or only those in category when it is non-empty.
	ListCrops(ctx context.Context, category string) []*entity.Crop
	GetCrop(ctx context.Context, id string) (*entity.Crop, bool)
	CreateCrop(ctx context.Context, crop entity.Crop) (*entity.Crop, error)

	// ListDiseases returns all diseases, or only those of cropID when it is non-empty.
	ListDiseases(ctx context.Context, cropID string) []*entity.Disease
	GetDisease(ctx context.Context, id string) (*entity.Disease, bool)
	CreateDisease(ctx context.Context, disease entity.Disease) (*entity.Disease, error)
}
