package memory

import (
	"context"
	"time"

	"agriassist/internal/domain/entity"
	"agriassist/internal/domain/repository"
)

type feedbackRepository struct {
	store *Store
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(store *Store) repository.FeedbackRepository {
	return &feedbackRepository{store: store}
}

func (repo *feedbackRepository) CreateFeedback(ctx context.Context, feedback entity.Feedback) (*entity.Feedback, error) {
	if err := requireField(feedback.Type, "type"); err != nil {
		return nil, err
	}
	if err := requireField(feedback.Message, "message"); err != nil {
		return nil, err
	}

	feedback.ID = newID()
	feedback.Status = entity.FeedbackStatusPending
	feedback.CreatedAt = repo.store.clock.stamp()

	return repo.store.feedback.insert(feedback.ID, feedback), nil
}

func (repo *feedbackRepository) FindFeedbackByID(ctx context.Context, id string) (*entity.Feedback, bool) {
	return repo.store.feedback.get(id)
}

func (repo *feedbackRepository) ListFeedback(ctx context.Context) []*entity.Feedback {
	items := repo.store.feedback.filter(nil)
	sortByTime(items, func(f *entity.Feedback) time.Time { return f.CreatedAt }, true)

	return items
}
