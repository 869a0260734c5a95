package memory

import (
	"context"

	"agriassist/internal/domain/entity"
	"agriassist/internal/domain/repository"
)

type diagnosisRepository struct {
	store *Store
}

// NewDiagnosisRepository is the constructor for diagnosisRepository.
func NewDiagnosisRepository(store *Store) repository.DiagnosisRepository {
	return &diagnosisRepository{store: store}
}

// CreateDiagnosis stores the diagnosis. Any CreatedAt on the input is replaced.
func (repo *diagnosisRepository) CreateDiagnosis(ctx context.Context, diagnosis entity.Diagnosis) (*entity.Diagnosis, error) {
	diagnosis.ID = newID()
	diagnosis.CreatedAt = repo.store.clock.stamp()

	return repo.store.diagnoses.insert(diagnosis.ID, diagnosis), nil
}

func (repo *diagnosisRepository) FindDiagnosisByID(ctx context.Context, id string) (*entity.Diagnosis, bool) {
	return repo.store.diagnoses.get(id)
}

func (repo *diagnosisRepository) ListDiagnoses(ctx context.Context, userID string) []*entity.Diagnosis {
	if userID == "" {
		return repo.store.diagnoses.filter(nil)
	}

	return repo.store.diagnoses.filter(func(d *entity.Diagnosis) bool {
		return d.UserID != nil && *d.UserID == userID
	})
}

func (repo *diagnosisRepository) CountDiagnoses(ctx context.Context) int {
	return repo.store.diagnoses.size()
}
