package memory

import (
	"context"
	"time"

	"agriassist/internal/domain/entity"
	"agriassist/internal/domain/repository"
)

type alertRepository struct {
	store *Store
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(store *Store) repository.AlertRepository {
	return &alertRepository{store: store}
}

// CreateAlert stores the alert with PublishedAt set to now. ExpiresAt is kept as given.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert entity.Alert) (*entity.Alert, error) {
	if err := requireField(alert.Title, "title"); err != nil {
		return nil, err
	}
	if err := requireField(alert.Description, "description"); err != nil {
		return nil, err
	}
	if err := requireField(alert.Type, "type"); err != nil {
		return nil, err
	}

	alert.ID = newID()
	alert.PublishedAt = repo.store.clock.stamp()

	return repo.store.alerts.insert(alert.ID, alert), nil
}

func (repo *alertRepository) FindAlertByID(ctx context.Context, id string) (*entity.Alert, bool) {
	return repo.store.alerts.get(id)
}

func (repo *alertRepository) ListAlerts(ctx context.Context) []*entity.Alert {
	alerts := repo.store.alerts.filter(nil)
	sortByTime(alerts, publishedAt, true)

	return alerts
}

func (repo *alertRepository) ListActiveAlerts(ctx context.Context) []*entity.Alert {
	now := repo.store.clock.current()

	alerts := repo.store.alerts.filter(func(a *entity.Alert) bool {
		return a.IsActiveAt(now)
	})
	sortByTime(alerts, publishedAt, true)

	return alerts
}

func publishedAt(a *entity.Alert) time.Time {
	return a.PublishedAt
}
