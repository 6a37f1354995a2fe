package service

import (
	"context"
	"time"
)

// SosEvent represents an SOS alert to be fanned out by the alert worker
type SosEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	AlertID       string    `json:"alert_id"`
	RequesterID   string    `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Message       string    `json:"message"`
	EmergencyType string    `json:"emergency_type"`
	RecipientIDs  []string  `json:"recipient_ids"` // Nearest users chosen by the ranker
	CreatedAt     time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSosEvent publishes an SOS event for async delivery
	PublishSosEvent(ctx context.Context, event *SosEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
