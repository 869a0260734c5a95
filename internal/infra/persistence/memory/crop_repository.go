package memory

import (
	"context"

	"agriassist/internal/domain/entity"
	"agriassist/internal/domain/repository"
)

type cropRepository struct {
	store *Store
}

// NewCropRepository is the constructor for cropRepository.
func NewCropRepository(store *Store) repository.CropRepository {
	return &cropRepository{store: store}
}

func (repo *cropRepository) CreateCrop(ctx context.Context, crop entity.Crop) (*entity.Crop, error) {
	if err := requireField(crop.Name, "name"); err != nil {
		return nil, err
	}
	if err := requireField(crop.Category, "category"); err != nil {
		return nil, err
	}

	crop.ID = newID()

	return repo.store.crops.insert(crop.ID, crop), nil
}

func (repo *cropRepository) FindCropByID(ctx context.Context, id string) (*entity.Crop, bool) {
	return repo.store.crops.get(id)
}

func (repo *cropRepository) ListCrops(ctx context.Context) []*entity.Crop {
	return repo.store.crops.filter(nil)
}

func (repo *cropRepository) ListCropsByCategory(ctx context.Context, category string) []*entity.Crop {
	return repo.store.crops.filter(func(c *entity.Crop) bool {
		return c.Category == category
	})
}
