package main

import (
	"context"
	"log/slog"
	"os"

	"lifeline/config"
	"lifeline/internal/delivery"
	"lifeline/internal/delivery/api"
	"lifeline/internal/delivery/api/middleware"
	"lifeline/internal/delivery/api/router/handler"
	"lifeline/internal/infra/assistant"
	"lifeline/internal/infra/firebase"
	"lifeline/internal/infra/identity"
	"lifeline/internal/infra/location"
	logs "lifeline/internal/infra/log"
	"lifeline/internal/infra/persistence"
	"lifeline/internal/infra/pubsub"
	"lifeline/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		firebase.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		location.Module,
		persistence.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		identity.Module,
		assistant.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRanker,
			impl.NewAssistantService,
			impl.NewLocationService,
			impl.NewAlertService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAssistantHandler,
			handler.NewLocationHandler,
			handler.NewAlertHandler,
			handler.NewProfileHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
