package notification

import (
	"context"
	"log/slog"

	"lifeline/internal/domain/service"
)

// logService records deliveries without contacting FCM, for local development
type logService struct {
	logger *slog.Logger
}

// NewLogService creates a notification service that only logs
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendBatch(_ context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	s.logger.Info("[LogNotification] Push skipped",
		slog.String("title", msg.Title),
		slog.String("alert_id", msg.Data["alert_id"]),
		slog.Int("token_count", len(tokens)),
	)

	return &service.BatchResult{SuccessCount: len(tokens), InvalidTokens: make([]string, 0)}, nil
}
