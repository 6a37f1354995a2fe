// Package identity verifies bearer tokens and resolves the calling user.
package identity

import (
	"context"
	"log/slog"

	"lifeline/config"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/service"
	"lifeline/internal/infra/firebase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for IdentityVerifier, injected by Fx
type Params struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	FirebaseApp *firebase.App
	Logger      *slog.Logger
}

// NewIdentityVerifier creates an IdentityVerifier based on configuration
func NewIdentityVerifier(params Params) (service.IdentityVerifier, error) {
	cfg := params.Config.Identity
	if cfg == nil || cfg.Provider == "" {
		cfg = &config.IdentityConfig{Provider: constants.IdentityProviderFirebase}
	}

	switch cfg.Provider {
	case constants.IdentityProviderFirebase:
		client, err := params.FirebaseApp.Auth(params.Ctx)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using Firebase Auth identity verifier")

		return NewFirebaseVerifier(client, params.Logger), nil

	case constants.IdentityProviderJWT:
		params.Logger.Info("Using local JWT identity verifier")

		return NewJWTVerifier(cfg.JWTSecret)

	case constants.IdentityProviderMock:
		if params.Config.Env.Env == constants.EnvProduction {
			return nil, errors.New("mock identity provider is not allowed in production")
		}
		params.Logger.Warn("Identity verification disabled, every request uses the mock user",
			slog.String("user_id", cfg.MockUserID),
		)

		return NewMockVerifier(cfg.MockUserID), nil

	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}

// Module provides the identity FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityVerifier),
)
