// Package persistence selects the alert and profile store backends.
package persistence

import (
	"context"
	"log/slog"

	"lifeline/config"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/firebase"
	"lifeline/internal/infra/persistence/firestore"
	"lifeline/internal/infra/persistence/memory"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the document stores, injected by Fx
type Params struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	FirebaseApp *firebase.App
	Logger      *slog.Logger
}

// Repositories are the document-backed repositories provided to Fx
type Repositories struct {
	fx.Out

	AlertRepo   repository.AlertRepository
	ProfileRepo repository.ProfileRepository
}

// NewRepositories creates the alert and profile repositories based on configuration
func NewRepositories(params Params) (Repositories, error) {
	cfg := params.Config.AlertStore
	if cfg == nil || cfg.Provider == "" {
		cfg = &config.AlertStoreConfig{Provider: constants.AlertProviderFirestore}
	}

	switch cfg.Provider {
	case constants.AlertProviderFirestore:
		client, err := params.FirebaseApp.Firestore(params.Ctx)
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using Firestore alert and profile stores",
			slog.String("alerts_collection", cfg.AlertsCollection),
			slog.String("users_collection", cfg.UsersCollection),
		)

		return Repositories{
			AlertRepo:   firestore.NewAlertRepository(client, cfg.AlertsCollection),
			ProfileRepo: firestore.NewProfileRepository(client, cfg.UsersCollection),
		}, nil

	case constants.AlertProviderMemory:
		params.Logger.Info("Using in-memory alert and profile stores")

		return Repositories{
			AlertRepo:   memory.NewAlertRepository(),
			ProfileRepo: memory.NewProfileRepository(),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown alert store provider: %s", cfg.Provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
