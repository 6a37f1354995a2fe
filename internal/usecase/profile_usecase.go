package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
)

// ProfileUsecase defines the interface for user profiles and their devices
type ProfileUsecase interface {
	GetProfile(ctx context.Context, uid string) (*entity.Profile, error)

	// RegisterDeviceToken stores the push token of the caller's current device.
	RegisterDeviceToken(ctx context.Context, uid, token string) error
}
