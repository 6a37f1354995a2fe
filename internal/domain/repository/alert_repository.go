// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when an alert does not exist.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository persists SOS alerts.
type AlertRepository interface {
	// Create stores a new alert under alert.ID.
	Create(ctx context.Context, alert *entity.Alert) error

	// FindByID retrieves an alert by its id.
	FindByID(ctx context.Context, id string) (*entity.Alert, error)

	// ListActiveSince returns active alerts created at or after since, newest first.
	ListActiveSince(ctx context.Context, since time.Time) ([]*entity.Alert, error)

	// AddResponse records a help response keyed by the responder's id.
	AddResponse(ctx context.Context, alertID string, response *entity.HelpResponse) error

	// UpdateDeliveryStats records push delivery counts for an alert.
	UpdateDeliveryStats(ctx context.Context, alertID string, sent, failed int) error
}
