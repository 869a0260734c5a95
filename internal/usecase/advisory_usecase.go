package usecase

import (
	"context"

	"agriassist/internal/domain/entity"
	"agriassist/internal/domain/repository"
)

// AdvisoryUsecase exposes the expert directory and published alerts.
type AdvisoryUsecase interface {
	// ListExperts returns all experts when the filter is empty, otherwise the matching subset.
	ListExperts(ctx context.Context, filter repository.ExpertFilter) []*entity.Expert
	CreateExpert(ctx context.Context, expert entity.Expert) (*entity.Expert, error)

	// ListAlerts returns alerts newest first, restricted to unexpired ones when activeOnly is set.
	ListAlerts(ctx context.Context, activeOnly bool) []*entity.Alert
	PublishAlert(ctx context.Context, alert entity.Alert) (*entity.Alert, error)
}
