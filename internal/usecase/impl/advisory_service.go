package impl

import (
	"context"
	"log/slog"

	deliverycontext "agriassist/internal/delivery/context"
	"agriassist/internal/domain/entity"
	"agriassist/internal/domain/repository"
	"agriassist/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// advisoryService implements the AdvisoryUsecase interface.
type advisoryService struct {
	expertRepo repository.ExpertRepository
	alertRepo  repository.AlertRepository
	logger     *slog.Logger
}

// AdvisoryServiceParams holds dependencies for AdvisoryService, injected by Fx.
type AdvisoryServiceParams struct {
	fx.In

	ExpertRepo repository.ExpertRepository
	AlertRepo  repository.AlertRepository
	Logger     *slog.Logger
}

// NewAdvisoryService is the constructor for advisoryService.
func NewAdvisoryService(params AdvisoryServiceParams) usecase.AdvisoryUsecase {
	return &advisoryService{
		expertRepo: params.ExpertRepo,
		alertRepo:  params.AlertRepo,
		logger:     params.Logger,
	}
}

func (srv *advisoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *advisoryService) ListExperts(ctx context.Context, filter repository.ExpertFilter) []*entity.Expert {
	if filter.IsEmpty() {
		return srv.expertRepo.ListExperts(ctx)
	}

	return srv.expertRepo.ListExpertsByFilter(ctx, filter)
}

func (srv *advisoryService) CreateExpert(ctx context.Context, expert entity.Expert) (*entity.Expert, error) {
	created, err := srv.expertRepo.CreateExpert(ctx, expert)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create expert")
	}

	srv.log(ctx).Info("Expert created", slog.String("expertID", created.ID))

	return created, nil
}

func (srv *advisoryService) ListAlerts(ctx context.Context, activeOnly bool) []*entity.Alert {
	if activeOnly {
		return srv.alertRepo.ListActiveAlerts(ctx)
	}

	return srv.alertRepo.ListAlerts(ctx)
}

// PublishAlert stores the alert. PublishedAt is always assigned by the store.
func (srv *advisoryService) PublishAlert(ctx context.Context, alert entity.Alert) (*entity.Alert, error) {
	created, err := srv.alertRepo.CreateAlert(ctx, alert)
	if err != nil {
		return nil, errors.Wrap(err, "failed to publish alert")
	}

	srv.log(ctx).Info("Alert published", slog.String("alertID", created.ID), slog.String("type", created.Type))

	return created, nil
}
