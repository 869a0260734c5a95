package repository

import (
	"context"

	"agriassist/internal/domain/entity"
)

// AlertRepository defines the persistence operations for alerts.
// Both listings are ordered by PublishedAt, newest first.
type AlertRepository interface {
	// CreateAlert stores an alert and stamps PublishedAt.
	CreateAlert(ctx context.Context, alert entity.Alert) (*entity.Alert, error)
	FindAlertByID(ctx context.Context, id string) (*entity.Alert, bool)
	ListAlerts(ctx context.Context) []*entity.Alert

	// ListActiveAlerts returns the alerts whose ExpiresAt is nil or later than now.
	ListActiveAlerts(ctx context.Context) []*entity.Alert
}
