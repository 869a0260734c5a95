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

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	logger       *slog.Logger
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: params.FeedbackRepo,
		logger:       params.Logger,
	}
}

func (srv *feedbackService) SubmitFeedback(ctx context.Context, input usecase.FeedbackInput) (*entity.Feedback, error) {
	created, err := srv.feedbackRepo.CreateFeedback(ctx, entity.Feedback{
		Name:    input.Name,
		Email:   input.Email,
		Type:    input.Type,
		Message: input.Message,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit feedback")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).
		Info("Feedback received", slog.String("feedbackID", created.ID), slog.String("type", created.Type))

	return created, nil
}

func (srv *feedbackService) ListFeedback(ctx context.Context) []*entity.Feedback {
	return srv.feedbackRepo.ListFeedback(ctx)
}
