package location

import (
	"context"
	"log/slog"

	"lifeline/config"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/firebase"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for LocationRepository, injected by Fx
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	FirebaseApp *firebase.App
	Logger      *slog.Logger
}

// NewLocationRepository creates a LocationRepository based on configuration
func NewLocationRepository(params Params) (repository.LocationRepository, error) {
	cfg := params.Config.LocationStore
	if cfg == nil || cfg.Provider == "" {
		cfg = &config.LocationStoreConfig{Provider: constants.LocationProviderFirebase}
	}
	logger := params.Logger

	switch cfg.Provider {
	case constants.LocationProviderFirebase:
		client, err := params.FirebaseApp.Database(params.Ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Realtime Database location store", slog.String("path", cfg.Path))

		return NewRTDBStore(client, cfg.Path, logger), nil

	case constants.LocationProviderRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis addr is required for redis location store")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(params.Ctx).Err(); err != nil {
			client.Close()

			return nil, errors.Wrapf(err, "failed to connect to redis at %s", cfg.Redis.Addr)
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing Redis location store")

				return client.Close()
			},
		})
		logger.Info("Using Redis location store", slog.String("addr", cfg.Redis.Addr))

		return NewRedisStore(client, cfg.Redis.Key, logger), nil

	case constants.LocationProviderMemory:
		logger.Info("Using in-memory location store")

		return NewMemoryStore(), nil

	default:
		return nil, errors.Errorf("unknown location store provider: %s", cfg.Provider)
	}
}

// Module provides the location store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLocationRepository),
)
