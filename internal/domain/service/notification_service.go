package service

import (
	"context"
)

// MaxBatchTokens is the largest token list accepted by a single multicast send.
const MaxBatchTokens = 500

// PushMessage is the notification payload sent to devices
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult summarizes a multicast send
type BatchResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens reported as unregistered or malformed
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatch sends a push notification to at most MaxBatchTokens device tokens
	SendBatch(ctx context.Context, tokens []string, msg *PushMessage) (*BatchResult, error)
}
