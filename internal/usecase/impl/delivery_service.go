package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/infra/metrics"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeliveryServiceParams holds dependencies for the SOS delivery service, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	ProfileRepo     repository.ProfileRepository
	AlertRepo       repository.AlertRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

type deliveryService struct {
	profileRepo     repository.ProfileRepository
	alertRepo       repository.AlertRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewDeliveryService creates the service that fans SOS events out to devices
func NewDeliveryService(params DeliveryServiceParams) usecase.AlertDeliveryUsecase {
	return &deliveryService{
		profileRepo:     params.ProfileRepo,
		alertRepo:       params.AlertRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

// Deliver sends the SOS event to every recipient with a registered device
func (s *deliveryService) Deliver(ctx context.Context, event *service.SosEvent) (*usecase.DeliveryReport, error) {
	if event == nil || event.AlertID == "" {
		return nil, errors.New("sos event without alert id")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	report := &usecase.DeliveryReport{Recipients: len(event.RecipientIDs)}

	if len(event.RecipientIDs) == 0 {
		logger.Info("[Worker] No recipients to notify", slog.String("alert_id", event.AlertID))

		return report, nil
	}

	deviceTokens, err := s.profileRepo.FindFCMTokens(ctx, event.RecipientIDs)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to find recipient devices"))
	}

	if len(deviceTokens) == 0 {
		logger.Info("[Worker] No devices found for recipients", slog.String("alert_id", event.AlertID))

		return report, nil
	}

	tokens, owners := collectTokens(deviceTokens)
	report.Tokens = len(tokens)

	msg := buildSosPush(event)
	invalidTokens := s.sendBatches(ctx, logger, tokens, msg, report)

	s.cleanupInvalidTokens(ctx, logger, invalidTokens, owners)
	report.InvalidTokens = len(invalidTokens)

	if err := s.alertRepo.UpdateDeliveryStats(ctx, event.AlertID, report.Sent, report.Failed); err != nil {
		logger.Error("[Worker] Failed to update alert delivery stats",
			slog.String("alert_id", event.AlertID),
			slog.Any("error", err),
		)
	}

	metrics.RecordPushDeliveries(report.Sent, report.Failed, report.InvalidTokens)
	logger.Info("[Worker] SOS delivery completed",
		slog.String("alert_id", event.AlertID),
		slog.Int("total_sent", report.Sent),
		slog.Int("total_failed", report.Failed),
		slog.Int("invalid_tokens", report.InvalidTokens),
	)

	return report, nil
}

// collectTokens de-duplicates tokens and remembers which user owns each one
func collectTokens(deviceTokens []entity.DeviceToken) ([]string, map[string]string) {
	tokens := make([]string, 0, len(deviceTokens))
	owners := make(map[string]string, len(deviceTokens))
	for _, dt := range deviceTokens {
		if dt.Token == "" {
			continue
		}
		if _, seen := owners[dt.Token]; seen {
			continue
		}
		owners[dt.Token] = dt.UserID
		tokens = append(tokens, dt.Token)
	}

	return tokens, owners
}

// sendBatches sends msg in batches of service.MaxBatchTokens and returns the invalid tokens
func (s *deliveryService) sendBatches(ctx context.Context, logger *slog.Logger, tokens []string, msg *service.PushMessage, report *usecase.DeliveryReport) []string {
	var invalidTokens []string

	for idx := 0; idx < len(tokens); idx += service.MaxBatchTokens {
		end := min(idx+service.MaxBatchTokens, len(tokens))
		batch := tokens[idx:end]

		result, err := s.notificationSvc.SendBatch(ctx, batch, msg)
		if err != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			report.Failed += len(batch)

			continue
		}

		report.Sent += result.SuccessCount
		report.Failed += result.FailureCount
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
	}

	return invalidTokens
}

// cleanupInvalidTokens clears tokens the push service rejected as unregistered
func (s *deliveryService) cleanupInvalidTokens(ctx context.Context, logger *slog.Logger, invalidTokens []string, owners map[string]string) {
	for _, token := range invalidTokens {
		uid, ok := owners[token]
		if !ok {
			continue
		}

		if err := s.profileRepo.ClearFCMToken(ctx, uid); err != nil {
			logger.Warn("[Worker] Failed to clear invalid device token",
				slog.String("user_id", uid),
				slog.Any("error", err),
			)
		}
	}
}

// buildSosPush creates the notification shown on recipient devices
func buildSosPush(event *service.SosEvent) *service.PushMessage {
	name := event.RequesterName
	if name == "" {
		name = "Someone nearby"
	}

	return &service.PushMessage{
		Title: fmt.Sprintf("SOS: %s emergency nearby", event.EmergencyType),
		Body:  fmt.Sprintf("%s needs help: %s", name, event.Message),
		Data: map[string]string{
			"type":           "sos_alert",
			"alert_id":       event.AlertID,
			"requester_id":   event.RequesterID,
			"emergency_type": event.EmergencyType,
			"latitude":       strconv.FormatFloat(event.Latitude, 'f', -1, 64),
			"longitude":      strconv.FormatFloat(event.Longitude, 'f', -1, 64),
		},
	}
}
