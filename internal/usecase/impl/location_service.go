package impl

import (
	"context"
	"log/slog"
	"time"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/proximity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/metrics"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationServiceParams holds dependencies for the location service, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	Ranker       *proximity.Ranker
	Config       *config.Config
	Logger       *slog.Logger
}

type locationService struct {
	locationRepo repository.LocationRepository
	ranker       *proximity.Ranker
	readTimeout  time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		ranker:       params.Ranker,
		readTimeout:  snapshotTimeout(params.Config),
		logger:       params.Logger,
		now:          time.Now,
	}
}

// UpdateLocation stores the caller's latest position
func (s *locationService) UpdateLocation(ctx context.Context, identity *entity.Identity, position proximity.Position) error {
	if identity == nil || identity.UID == "" {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	coord, err := position.Coordinate()
	if err != nil {
		return err
	}

	displayName := identity.DisplayName
	if displayName == "" {
		displayName = constants.DefaultDisplayName
	}

	location := &entity.UserLocation{
		UserID:      identity.UID,
		Latitude:    coord.Lat,
		Longitude:   coord.Lng,
		DisplayName: displayName,
		UpdatedAt:   s.now().UTC(),
	}
	if err := s.locationRepo.Update(ctx, location); err != nil {
		return errors.Wrap(err, "failed to update location")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Location updated",
		slog.String("user_id", identity.UID),
		slog.Float64("latitude", coord.Lat),
		slog.Float64("longitude", coord.Lng),
	)

	return nil
}

// NearestUsers ranks the other tracked users by distance from position
func (s *locationService) NearestUsers(ctx context.Context, userID string, position proximity.Position) ([]proximity.RankedResult, error) {
	if _, err := position.Coordinate(); err != nil {
		return nil, err
	}

	users, err := readSnapshot(ctx, s.locationRepo, s.readTimeout)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Location store unavailable, returning no nearby users",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		metrics.RecordNearestUsers(metrics.OutcomeEmpty)

		return []proximity.RankedResult{}, nil
	}

	results, err := s.ranker.RankNearest(userID, position, users)
	if err != nil {
		return nil, err
	}

	outcome := metrics.OutcomeSuccess
	if len(results) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordNearestUsers(outcome)

	return results, nil
}
