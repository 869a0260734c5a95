package main

import (
	"context"
	"log/slog"
	"os"

	"agriassist/config"
	"agriassist/internal/delivery"
	"agriassist/internal/delivery/api"
	"agriassist/internal/delivery/api/router/handler"
	"agriassist/internal/infra/auth"
	"agriassist/internal/infra/inference"
	logs "agriassist/internal/infra/log"
	"agriassist/internal/infra/persistence/memory"
	"agriassist/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		memory.NewFromConfig,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewUserRepository,
			memory.NewCropRepository,
			memory.NewDiseaseRepository,
			memory.NewDiagnosisRepository,
			memory.NewExpertRepository,
			memory.NewAlertRepository,
			memory.NewChatMessageRepository,
			memory.NewFeedbackRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			// Returns nil without an API key; the orchestrators then run degraded.
			inference.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewAdvisoryService,
			impl.NewFeedbackService,
			impl.NewDiagnosisService,
			impl.NewChatService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewDiagnosisHandler,
			handler.NewAdvisoryHandler,
			handler.NewChatHandler,
			handler.NewFeedbackHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
