package notification

import (
	"context"
	"log/slog"

	"lifeline/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client         multicastSender
	isInvalidToken func(error) bool
	logger         *slog.Logger
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(client *messaging.Client, logger *slog.Logger) service.NotificationService {
	return newFirebaseService(client, logger)
}

func newFirebaseService(client multicastSender, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client:         client,
		isInvalidToken: isUnusableToken,
		logger:         logger,
	}
}

// SendBatch sends push notifications to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}

	// Firebase limits to 500 tokens per request
	if len(tokens) > service.MaxBatchTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxBatchTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.BatchResult{
		SuccessCount:  response.SuccessCount,
		FailureCount:  response.FailureCount,
		InvalidTokens: make([]string, 0),
	}

	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if s.isInvalidToken(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])

			continue
		}

		s.logger.Warn("Push delivery failed",
			slog.Int("token_index", idx),
			slog.Any("error", sendResponse.Error),
		)
	}

	return result, nil
}

// isUnusableToken reports whether FCM rejected the token itself
func isUnusableToken(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}
