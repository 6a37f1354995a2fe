// Package firestore contains the Firestore implementation of the persistence layer.
package firestore

import (
	"context"
	"time"

	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	client     *firestore.Client
	collection string
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(client *firestore.Client, collection string) repository.AlertRepository {
	if collection == "" {
		collection = model.AlertsCollection
	}

	return &alertRepository{
		client:     client,
		collection: collection,
	}
}

func (repo *alertRepository) alerts() *firestore.CollectionRef {
	return repo.client.Collection(repo.collection)
}

// Create persists a new alert under its id.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	if _, err := repo.alerts().Doc(alert.ID).Create(ctx, model.FromAlertDomain(alert)); err != nil {
		return toStoreError(err, "failed to create alert")
	}

	return nil
}

// FindByID retrieves an alert by its document id.
func (repo *alertRepository) FindByID(ctx context.Context, id string) (*entity.Alert, error) {
	snap, err := repo.alerts().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, toStoreError(err, "failed to find alert by ID")
	}

	var alertM model.AlertModel
	if err := snap.DataTo(&alertM); err != nil {
		return nil, errors.Wrap(err, "failed to decode alert")
	}

	return model.ToAlertDomain(snap.Ref.ID, &alertM), nil
}

// ListActiveSince returns active alerts created at or after since, newest first.
func (repo *alertRepository) ListActiveSince(ctx context.Context, since time.Time) ([]*entity.Alert, error) {
	iter := repo.alerts().
		Where("status", "==", constants.AlertStatusActive).
		Where("createdAt", ">=", since).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	alerts := make([]*entity.Alert, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, toStoreError(err, "failed to list active alerts")
		}

		var alertM model.AlertModel
		if err := snap.DataTo(&alertM); err != nil {
			return nil, errors.Wrapf(err, "failed to decode alert %s", snap.Ref.ID)
		}
		alerts = append(alerts, model.ToAlertDomain(snap.Ref.ID, &alertM))
	}

	return alerts, nil
}

// AddResponse sets helpResponses.<responder id> on the alert.
func (repo *alertRepository) AddResponse(ctx context.Context, alertID string, response *entity.HelpResponse) error {
	_, err := repo.alerts().Doc(alertID).Update(ctx, []firestore.Update{
		{
			FieldPath: firestore.FieldPath{"helpResponses", response.UserID},
			Value:     model.FromHelpResponseDomain(response),
		},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrAlertNotFound
		}

		return toStoreError(err, "failed to add help response")
	}

	return nil
}

// UpdateDeliveryStats overwrites the push delivery counts of an alert.
func (repo *alertRepository) UpdateDeliveryStats(ctx context.Context, alertID string, sent, failed int) error {
	_, err := repo.alerts().Doc(alertID).Update(ctx, []firestore.Update{
		{Path: "totalSent", Value: sent},
		{Path: "totalFailed", Value: failed},
		{Path: "deliveredAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrAlertNotFound
		}

		return toStoreError(err, "failed to update delivery stats")
	}

	return nil
}
