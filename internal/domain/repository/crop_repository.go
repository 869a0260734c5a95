package repository

import (
	"context"

	"agriassist/internal/domain/entity"
)

// CropRepository defines the persistence operations for reference crops.
type CropRepository interface {
	CreateCrop(ctx context.Context, crop entity.Crop) (*entity.Crop, error)
	FindCropByID(ctx context.Context, id string) (*entity.Crop, bool)
	ListCrops(ctx context.Context) []*entity.Crop

	// ListCropsByCategory returns the crops whose category equals the argument exactly.
	ListCropsByCategory(ctx context.Context, category string) []*entity.Crop
}
