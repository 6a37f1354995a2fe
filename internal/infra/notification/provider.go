// Package notification delivers push notifications to user devices.
package notification

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

// Params holds dependencies for NotificationService, injected by Fx
type Params struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	FirebaseApp *firebase.App
	Logger      *slog.Logger
}

// NewNotificationService creates a NotificationService based on configuration
func NewNotificationService(params Params) (service.NotificationService, error) {
	provider := constants.NotificationProviderLog
	if params.Config.Notification != nil && params.Config.Notification.Provider != "" {
		provider = params.Config.Notification.Provider
	}

	switch provider {
	case constants.NotificationProviderFirebase:
		client, err := params.FirebaseApp.Messaging(params.Ctx)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using Firebase Cloud Messaging for push notifications")

		return NewFirebaseService(client, params.Logger), nil

	case constants.NotificationProviderLog:
		params.Logger.Info("Using log-only push notifications")

		return NewLogService(params.Logger), nil

	default:
		return nil, errors.Errorf("unknown notification provider: %s", provider)
	}
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
