// Package memory contains in-process implementations of the persistence layer
// for local development and tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"

	"github.com/pkg/errors"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	mu     sync.RWMutex
	alerts map[string]*entity.Alert
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository() repository.AlertRepository {
	return &alertRepository{alerts: make(map[string]*entity.Alert)}
}

func (repo *alertRepository) Create(_ context.Context, alert *entity.Alert) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.alerts[alert.ID]; ok {
		return errors.Errorf("alert %s already exists", alert.ID)
	}
	repo.alerts[alert.ID] = cloneAlert(alert)

	return nil
}

func (repo *alertRepository) FindByID(_ context.Context, id string) (*entity.Alert, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	alert, ok := repo.alerts[id]
	if !ok {
		return nil, repository.ErrAlertNotFound
	}

	return cloneAlert(alert), nil
}

func (repo *alertRepository) ListActiveSince(_ context.Context, since time.Time) ([]*entity.Alert, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	alerts := make([]*entity.Alert, 0)
	for _, alert := range repo.alerts {
		if alert.Status != constants.AlertStatusActive || alert.CreatedAt.Before(since) {
			continue
		}
		alerts = append(alerts, cloneAlert(alert))
	}

	slices.SortFunc(alerts, func(a, b *entity.Alert) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return alerts, nil
}

func (repo *alertRepository) AddResponse(_ context.Context, alertID string, response *entity.HelpResponse) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	alert, ok := repo.alerts[alertID]
	if !ok {
		return repository.ErrAlertNotFound
	}
	if alert.HelpResponses == nil {
		alert.HelpResponses = make(map[string]entity.HelpResponse)
	}
	alert.HelpResponses[response.UserID] = *response

	return nil
}

func (repo *alertRepository) UpdateDeliveryStats(_ context.Context, alertID string, sent, failed int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	alert, ok := repo.alerts[alertID]
	if !ok {
		return repository.ErrAlertNotFound
	}
	alert.TotalSent = sent
	alert.TotalFailed = failed

	return nil
}

func cloneAlert(alert *entity.Alert) *entity.Alert {
	clone := *alert
	clone.Recipients = slices.Clone(alert.Recipients)
	clone.HelpResponses = maps.Clone(alert.HelpResponses)
	if clone.HelpResponses == nil {
		clone.HelpResponses = make(map[string]entity.HelpResponse)
	}

	return &clone
}
