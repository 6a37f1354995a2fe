package impl

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/proximity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/infra/metrics"
	"lifeline/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const prefilterPadding = 1.001

// AlertServiceParams holds dependencies for the alert service, injected by Fx.
type AlertServiceParams struct {
	fx.In

	AlertRepo    repository.AlertRepository
	LocationRepo repository.LocationRepository
	Publisher    service.EventPublisher
	Ranker       *proximity.Ranker
	Config       *config.Config
	Logger       *slog.Logger
}

type alertService struct {
	alertRepo    repository.AlertRepository
	locationRepo repository.LocationRepository
	publisher    service.EventPublisher
	ranker       *proximity.Ranker
	readTimeout  time.Duration
	activeWindow time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewAlertService creates a new SOS alert service
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		alertRepo:    params.AlertRepo,
		locationRepo: params.LocationRepo,
		publisher:    params.Publisher,
		ranker:       params.Ranker,
		readTimeout:  snapshotTimeout(params.Config),
		activeWindow: activeWindow(params.Config),
		logger:       params.Logger,
		now:          time.Now,
	}
}

// SendSos raises an SOS alert for the caller. A missing location snapshot, a
// failed alert write or a failed publish never fails the request.
func (s *alertService) SendSos(ctx context.Context, identity *entity.Identity, input *usecase.SendSosInput) (*usecase.SosResult, error) {
	if identity == nil || identity.UID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if _, err := input.Position.Coordinate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Message is required")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	users, err := readSnapshot(ctx, s.locationRepo, s.readTimeout)
	if err != nil {
		logger.Warn("Location store unavailable, sending SOS without recipients",
			slog.String("user_id", identity.UID),
			slog.Any("error", err),
		)
	}

	dispatch, err := s.ranker.BuildSosBroadcast(identity.UID, input.Position, input.Message, input.EmergencyType, users)
	if err != nil {
		return nil, err
	}

	userName := identity.DisplayName
	if userName == "" {
		userName = constants.DefaultDisplayName
	}

	s.persistAlert(ctx, logger, dispatch, userName)
	if !dispatch.Degraded {
		s.publishAlert(ctx, logger, dispatch, userName)
	}

	metrics.RecordSosBroadcast(len(dispatch.Recipients))
	logger.Info("SOS alert sent",
		slog.String("alert_id", dispatch.AlertID),
		slog.String("user_id", identity.UID),
		slog.Float64("latitude", dispatch.Coordinate.Lat),
		slog.Float64("longitude", dispatch.Coordinate.Lng),
		slog.String("emergency_type", dispatch.EmergencyType),
		slog.Int("recipients", len(dispatch.Recipients)),
	)

	result := &usecase.SosResult{
		Status:     usecase.SosStatusSent,
		Recipients: dispatch.Recipients,
		AlertID:    dispatch.AlertID,
		Message:    usecase.SosMessageSent,
	}
	if dispatch.Degraded {
		result.Message = usecase.SosMessageNoNeighbor
	}

	return result, nil
}

func (s *alertService) persistAlert(ctx context.Context, logger *slog.Logger, dispatch *proximity.SosDispatch, userName string) {
	alert := &entity.Alert{
		ID:            dispatch.AlertID,
		UserID:        dispatch.RequesterID,
		UserName:      userName,
		Message:       dispatch.Message,
		EmergencyType: dispatch.EmergencyType,
		Location: entity.AlertLocation{
			Latitude:  dispatch.Coordinate.Lat,
			Longitude: dispatch.Coordinate.Lng,
		},
		Status:        constants.AlertStatusActive,
		Recipients:    dispatch.Recipients,
		HelpResponses: map[string]entity.HelpResponse{},
		CreatedAt:     dispatch.CreatedAt.UTC(),
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		logger.Error("Failed to persist SOS alert",
			slog.String("alert_id", dispatch.AlertID),
			slog.Any("error", err),
		)
	}
}

func (s *alertService) publishAlert(ctx context.Context, logger *slog.Logger, dispatch *proximity.SosDispatch, userName string) {
	event := &service.SosEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		AlertID:       dispatch.AlertID,
		RequesterID:   dispatch.RequesterID,
		RequesterName: userName,
		Latitude:      dispatch.Coordinate.Lat,
		Longitude:     dispatch.Coordinate.Lng,
		Message:       dispatch.Message,
		EmergencyType: dispatch.EmergencyType,
		RecipientIDs:  dispatch.Recipients,
		CreatedAt:     dispatch.CreatedAt.UTC(),
	}

	if err := s.publisher.PublishSosEvent(ctx, event); err != nil {
		logger.Error("Failed to publish SOS event",
			slog.String("alert_id", dispatch.AlertID),
			slog.Any("error", err),
		)
	}
}

// NearbyAlerts lists recent active alerts within radiusKm of position
func (s *alertService) NearbyAlerts(ctx context.Context, userID string, position proximity.Position, radiusKm float64) ([]*entity.NearbyAlert, error) {
	origin, err := position.Coordinate()
	if err != nil {
		return nil, err
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Radius must be a positive number of kilometers")
	}

	alerts, err := s.alertRepo.ListActiveSince(ctx, s.now().Add(-s.activeWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active alerts")
	}

	bound, usePrefilter := s.prefilterBound(origin, radiusKm)

	nearby := make([]*entity.NearbyAlert, 0, len(alerts))
	for _, alert := range alerts {
		coord := proximity.Coordinate{Lat: alert.Location.Latitude, Lng: alert.Location.Longitude}
		if !coord.Valid() {
			continue
		}
		if usePrefilter && !bound.Contains(coord.Point()) {
			continue
		}

		distance := proximity.Haversine(origin, coord, s.ranker.RadiusKm())
		if distance > radiusKm {
			continue
		}

		nearby = append(nearby, &entity.NearbyAlert{
			Alert:      alert,
			DistanceKm: distance,
			IsOwnAlert: alert.UserID == userID,
		})
	}

	slices.SortStableFunc(nearby, func(a, b *entity.NearbyAlert) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})

	return nearby, nil
}

// prefilterBound returns a box that contains the whole search circle. orb sizes
// bounds on its own earth radius, so the distance is rescaled to the same angle
// on the ranker's sphere and padded. The box is unusable when it wraps the
// antimeridian.
func (s *alertService) prefilterBound(origin proximity.Coordinate, radiusKm float64) (orb.Bound, bool) {
	angle := radiusKm / s.ranker.RadiusKm()
	bound := geo.NewBoundAroundPoint(origin.Point(), angle*orb.EarthRadius*prefilterPadding)

	return bound, bound.Min.Lon() <= bound.Max.Lon()
}

// GetAlert returns one alert by id
func (s *alertService) GetAlert(ctx context.Context, alertID string) (*entity.Alert, error) {
	alertID = strings.TrimSpace(alertID)
	if alertID == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Alert id is required")
	}

	alert, err := s.alertRepo.FindByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAlertNotFound)
		}

		return nil, errors.Wrap(err, "failed to get alert")
	}

	return alert, nil
}

// RespondToAlert records the caller's help response on an alert
func (s *alertService) RespondToAlert(ctx context.Context, identity *entity.Identity, alertID, message string) error {
	if identity == nil || identity.UID == "" {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	alertID = strings.TrimSpace(alertID)
	message = strings.TrimSpace(message)
	if alertID == "" {
		return domainerrors.ErrInvalidInput.WithDetails("Alert id is required")
	}
	if message == "" {
		return domainerrors.ErrInvalidInput.WithDetails("Message is required")
	}

	userName := identity.DisplayName
	if userName == "" {
		userName = constants.DefaultDisplayName
	}

	response := &entity.HelpResponse{
		UserID:    identity.UID,
		UserName:  userName,
		Message:   message,
		Timestamp: s.now().UTC(),
	}
	if err := s.alertRepo.AddResponse(ctx, alertID, response); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return errors.WithStack(domainerrors.ErrAlertNotFound)
		}

		return errors.Wrap(err, "failed to record help response")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Help response recorded",
		slog.String("alert_id", alertID),
		slog.String("user_id", identity.UID),
	)

	return nil
}
