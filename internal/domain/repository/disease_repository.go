package repository

import (
	"context"

	"agriassist/internal/domain/entity"
)

// DiseaseRepository defines the persistence operations for the disease library.
type DiseaseRepository interface {
	// CreateDisease stores a disease. CropID is kept as given, even if no such crop exists.
	CreateDisease(ctx context.Context, disease entity.Disease) (*entity.Disease, error)
	FindDiseaseByID(ctx context.Context, id string) (*entity.Disease, bool)
	ListDiseases(ctx context.Context) []*entity.Disease
	ListDiseasesByCrop(ctx context.Context, cropID string) []*entity.Disease
}
