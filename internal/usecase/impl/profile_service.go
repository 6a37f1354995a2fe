package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile retrieves the user's document.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*entity.Profile, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Getting user profile", slog.String("user_id", uid))

	profile, err := srv.profileRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return profile, nil
}

// RegisterDeviceToken stores the push token of the caller's current device.
func (srv *profileService) RegisterDeviceToken(ctx context.Context, uid, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrInvalidInput.WithDetails("Device token is required")
	}

	if err := srv.profileRepo.SetFCMToken(ctx, uid, token); err != nil {
		return errors.Wrap(err, "failed to store device token")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Device token registered", slog.String("user_id", uid))

	return nil
}
