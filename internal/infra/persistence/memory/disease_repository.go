package memory

import (
	"context"

	"agriassist/internal/domain/entity"
	"agriassist/internal/domain/repository"
)

type diseaseRepository struct {
	store *Store
}

// NewDiseaseRepository is the constructor for diseaseRepository.
func NewDiseaseRepository(store *Store) repository.DiseaseRepository {
	return &diseaseRepository{store: store}
}

func (repo *diseaseRepository) CreateDisease(ctx context.Context, disease entity.Disease) (*entity.Disease, error) {
	if err := requireField(disease.Name, "name"); err != nil {
		return nil, err
	}

	disease.ID = newID()

	return repo.store.diseases.insert(disease.ID, disease), nil
}

func (repo *diseaseRepository) FindDiseaseByID(ctx context.Context, id string) (*entity.Disease, bool) {
	return repo.store.diseases.get(id)
}

func (repo *diseaseRepository) ListDiseases(ctx context.Context) []*entity.Disease {
	return repo.store.diseases.filter(nil)
}

func (repo *diseaseRepository) ListDiseasesByCrop(ctx context.Context, cropID string) []*entity.Disease {
	return repo.store.diseases.filter(func(d *entity.Disease) bool {
		return d.CropID != nil && *d.CropID == cropID
	})
}
