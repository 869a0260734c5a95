package memory

import (
	"context"
	"slices"

	"agriassist/internal/domain/entity"
	"agriassist/internal/domain/repository"
)

type expertRepository struct {
	store *Store
}

// NewExpertRepository is the constructor for expertRepository.
func NewExpertRepository(store *Store) repository.ExpertRepository {
	return &expertRepository{store: store}
}

func (repo *expertRepository) CreateExpert(ctx context.Context, expert entity.Expert) (*entity.Expert, error) {
	if err := requireField(expert.Name, "name"); err != nil {
		return nil, err
	}

	expert.ID = newID()

	return repo.store.experts.insert(expert.ID, expert), nil
}

func (repo *expertRepository) FindExpertByID(ctx context.Context, id string) (*entity.Expert, bool) {
	return repo.store.experts.get(id)
}

func (repo *expertRepository) ListExperts(ctx context.Context) []*entity.Expert {
	return repo.store.experts.filter(nil)
}

func (repo *expertRepository) ListExpertsByFilter(ctx context.Context, filter repository.ExpertFilter) []*entity.Expert {
	return repo.store.experts.filter(func(e *entity.Expert) bool {
		return matchesExpertFilter(e, filter)
	})
}

func matchesExpertFilter(e *entity.Expert, filter repository.ExpertFilter) bool {
	if filter.District != "" && (e.District == nil || *e.District != filter.District) {
		return false
	}
	if filter.Specialization != "" && !slices.Contains(e.Specialization, filter.Specialization) {
		return false
	}
	if filter.Language != "" && !slices.Contains(e.Languages, filter.Language) {
		return false
	}

	return true
}
