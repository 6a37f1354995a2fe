package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/proximity"
)

// SOS response status and messages
const (
	SosStatusSent        = "sos_sent"
	SosMessageSent       = "SOS alert sent to nearby users"
	SosMessageNoNeighbor = "SOS sent, but no nearby users found."
)

// DefaultNearbyRadiusKm is the radius of the nearby-alert feed when the caller omits one.
const DefaultNearbyRadiusKm = 10.0

// SendSosInput represents the input for raising an SOS alert
type SendSosInput struct {
	Position      proximity.Position
	Message       string
	EmergencyType string
}

// SosResult is returned to the caller after an SOS alert is raised
type SosResult struct {
	Status     string   `json:"status"`
	Recipients []string `json:"recipients"`
	AlertID    string   `json:"alertId,omitempty"`
	Message    string   `json:"message"`
}

// AlertUsecase defines the interface for SOS alerts
type AlertUsecase interface {
	// SendSos selects the nearest users, persists the alert and queues push delivery.
	SendSos(ctx context.Context, identity *entity.Identity, input *SendSosInput) (*SosResult, error)

	// NearbyAlerts lists recent active alerts within radiusKm of position, nearest first.
	NearbyAlerts(ctx context.Context, userID string, position proximity.Position, radiusKm float64) ([]*entity.NearbyAlert, error)

	// GetAlert returns one alert with its help responses.
	GetAlert(ctx context.Context, alertID string) (*entity.Alert, error)

	// RespondToAlert records the caller's help response on an alert.
	RespondToAlert(ctx context.Context, identity *entity.Identity, alertID, message string) error
}
