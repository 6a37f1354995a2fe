package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/proximity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	mockRepo "lifeline/internal/mocks/repository"
	mockSvc "lifeline/internal/mocks/service"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertServiceFixture struct {
	service      *alertService
	alertRepo    *mockRepo.MockAlertRepository
	locationRepo *mockRepo.MockLocationRepository
	publisher    *mockSvc.MockEventPublisher
	now          time.Time
}

func newTestAlertService(t *testing.T) *alertServiceFixture {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := newTestConfig()

	svc := NewAlertService(AlertServiceParams{
		AlertRepo:    alertRepo,
		LocationRepo: locationRepo,
		Publisher:    publisher,
		Ranker:       NewRanker(cfg),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	}).(*alertService)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return &alertServiceFixture{
		service:      svc,
		alertRepo:    alertRepo,
		locationRepo: locationRepo,
		publisher:    publisher,
		now:          now,
	}
}

func sosInput() *usecase.SendSosInput {
	return &usecase.SendSosInput{
		Position: proximity.NewPosition(37.7749, -122.4194),
		Message:  "Chest pain",
	}
}

func TestAlertService_SendSos_NotifiesNearestUsers(t *testing.T) {
	fx := newTestAlertService(t)
	ctx := context.Background()
	identity := &entity.Identity{UID: "me", DisplayName: "Dana"}

	fx.locationRepo.EXPECT().Snapshot(mock.Anything).Return([]proximity.TrackedUser{
		{ID: "U1", Position: proximity.NewPosition(37.7750, -122.4195)},
		{ID: "U2", Position: proximity.NewPosition(40.7128, -74.0060)},
		{ID: "U4", Position: proximity.NewPosition(37.7740, -122.4200)},
	}, nil)

	var stored *entity.Alert
	fx.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(_ context.Context, alert *entity.Alert) { stored = alert }).
		Return(nil)

	var published *service.SosEvent
	fx.publisher.EXPECT().
		PublishSosEvent(ctx, mock.AnythingOfType("*service.SosEvent")).
		Run(func(_ context.Context, event *service.SosEvent) { published = event }).
		Return(nil)

	result, err := fx.service.SendSos(ctx, identity, sosInput())
	require.NoError(t, err)

	assert.Equal(t, usecase.SosStatusSent, result.Status)
	assert.Equal(t, usecase.SosMessageSent, result.Message)
	assert.Equal(t, []string{"U1", "U4", "U2"}, result.Recipients)
	assert.Contains(t, result.AlertID, "alert_me_")

	require.NotNil(t, stored)
	assert.Equal(t, result.AlertID, stored.ID)
	assert.Equal(t, "Dana", stored.UserName)
	assert.Equal(t, "general", stored.EmergencyType)
	assert.Equal(t, "active", stored.Status)
	assert.NotNil(t, stored.HelpResponses)

	require.NotNil(t, published)
	assert.Equal(t, result.AlertID, published.AlertID)
	assert.Equal(t, result.Recipients, published.RecipientIDs)
	assert.Equal(t, "Chest pain", published.Message)
}

func TestAlertService_SendSos_StoreUnavailableIsDegraded(t *testing.T) {
	fx := newTestAlertService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().Snapshot(mock.Anything).Return(nil, errors.New("timeout"))
	fx.alertRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Alert")).Return(nil)

	result, err := fx.service.SendSos(ctx, &entity.Identity{UID: "me"}, sosInput())
	require.NoError(t, err)

	assert.Equal(t, usecase.SosStatusSent, result.Status)
	assert.Equal(t, usecase.SosMessageNoNeighbor, result.Message)
	assert.NotNil(t, result.Recipients)
	assert.Empty(t, result.Recipients)
	fx.publisher.AssertNotCalled(t, "PublishSosEvent", mock.Anything, mock.Anything)
}

func TestAlertService_SendSos_PersistAndPublishFailuresAreNotFatal(t *testing.T) {
	fx := newTestAlertService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().Snapshot(mock.Anything).Return([]proximity.TrackedUser{
		{ID: "U1", Position: proximity.NewPosition(37.7750, -122.4195)},
	}, nil)
	fx.alertRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("firestore down"))
	fx.publisher.EXPECT().PublishSosEvent(ctx, mock.Anything).Return(errors.New("topic missing"))

	result, err := fx.service.SendSos(ctx, &entity.Identity{UID: "me"}, sosInput())
	require.NoError(t, err)
	assert.Equal(t, []string{"U1"}, result.Recipients)
}

func TestAlertService_SendSos_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SendSosInput
	}{
		{
			name:  "missing longitude",
			input: &usecase.SendSosInput{Position: proximity.Position{Latitude: new(float64)}, Message: "help"},
		},
		{
			name:  "blank message",
			input: &usecase.SendSosInput{Position: proximity.NewPosition(1, 1), Message: "  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newTestAlertService(t)

			result, err := fx.service.SendSos(context.Background(), &entity.Identity{UID: "me"}, tt.input)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestAlertService_NearbyAlerts_FiltersAndSorts(t *testing.T) {
	fx := newTestAlertService(t)
	ctx := context.Background()

	far := &entity.Alert{ID: "far", UserID: "other", Location: entity.AlertLocation{Latitude: 37.90, Longitude: -122.4194}}
	near := &entity.Alert{ID: "near", UserID: "other", Location: entity.AlertLocation{Latitude: 37.7760, Longitude: -122.4194}}
	own := &entity.Alert{ID: "own", UserID: "me", Location: entity.AlertLocation{Latitude: 37.7800, Longitude: -122.4194}}

	fx.alertRepo.EXPECT().
		ListActiveSince(ctx, fx.now.Add(-30*time.Minute)).
		Return([]*entity.Alert{far, own, near}, nil)

	alerts, err := fx.service.NearbyAlerts(ctx, "me", proximity.NewPosition(37.7749, -122.4194), usecase.DefaultNearbyRadiusKm)
	require.NoError(t, err)

	require.Len(t, alerts, 2)
	assert.Equal(t, "near", alerts[0].ID)
	assert.False(t, alerts[0].IsOwnAlert)
	assert.Equal(t, "own", alerts[1].ID)
	assert.True(t, alerts[1].IsOwnAlert)
	assert.Less(t, alerts[0].DistanceKm, alerts[1].DistanceKm)
}

func TestAlertService_NearbyAlerts_CustomRadius(t *testing.T) {
	fx := newTestAlertService(t)
	ctx := context.Background()

	far := &entity.Alert{ID: "far", Location: entity.AlertLocation{Latitude: 37.90, Longitude: -122.4194}}
	fx.alertRepo.EXPECT().ListActiveSince(ctx, mock.Anything).Return([]*entity.Alert{far}, nil)

	alerts, err := fx.service.NearbyAlerts(ctx, "me", proximity.NewPosition(37.7749, -122.4194), 25)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.InDelta(t, 13.9, alerts[0].DistanceKm, 0.1)
}

func TestAlertService_NearbyAlerts_KeepsAlertsAtRadiusEdge(t *testing.T) {
	fx := newTestAlertService(t)
	ctx := context.Background()

	// both 9.99 km from the origin on a 6371 km sphere
	north := &entity.Alert{ID: "north", Location: entity.AlertLocation{Latitude: 37.864742, Longitude: -122.4194}}
	east := &entity.Alert{ID: "east", Location: entity.AlertLocation{Latitude: 37.774845, Longitude: -122.305737}}
	outside := &entity.Alert{ID: "outside", Location: entity.AlertLocation{Latitude: 37.8665, Longitude: -122.4194}}
	fx.alertRepo.EXPECT().ListActiveSince(ctx, mock.Anything).Return([]*entity.Alert{north, east, outside}, nil)

	alerts, err := fx.service.NearbyAlerts(ctx, "me", proximity.NewPosition(37.7749, -122.4194), 10)
	require.NoError(t, err)

	require.Len(t, alerts, 2)
	for _, alert := range alerts {
		assert.InDelta(t, 9.99, alert.DistanceKm, 0.001)
	}
}

func TestAlertService_NearbyAlerts_AcrossAntimeridian(t *testing.T) {
	fx := newTestAlertService(t)
	ctx := context.Background()

	alert := &entity.Alert{ID: "fiji", Location: entity.AlertLocation{Latitude: 0, Longitude: -179.98}}
	fx.alertRepo.EXPECT().ListActiveSince(ctx, mock.Anything).Return([]*entity.Alert{alert}, nil)

	alerts, err := fx.service.NearbyAlerts(ctx, "me", proximity.NewPosition(0, 179.95), 10)
	require.NoError(t, err)

	require.Len(t, alerts, 1)
	assert.InDelta(t, 7.78, alerts[0].DistanceKm, 0.01)
}

func TestAlertService_NearbyAlerts_RejectsInvalidRadius(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		radius float64
	}{
		{name: "not a number", radius: math.NaN()},
		{name: "positive infinity", radius: math.Inf(1)},
		{name: "negative infinity", radius: math.Inf(-1)},
		{name: "negative", radius: -5},
		{name: "zero", radius: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := newTestAlertService(t)

			alerts, err := fx.service.NearbyAlerts(context.Background(), "me", proximity.NewPosition(37.77, -122.42), tt.radius)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
			assert.Nil(t, alerts)
		})
	}
}

func TestAlertService_NearbyAlerts_StoreError(t *testing.T) {
	fx := newTestAlertService(t)
	ctx := context.Background()

	fx.alertRepo.EXPECT().
		ListActiveSince(ctx, mock.Anything).
		Return(nil, domainerrors.NewStoreError(errors.New("unavailable"), "alerts"))

	_, err := fx.service.NearbyAlerts(ctx, "me", proximity.NewPosition(1, 1), 10)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestAlertService_RespondToAlert(t *testing.T) {
	fx := newTestAlertService(t)
	ctx := context.Background()

	fx.alertRepo.EXPECT().
		AddResponse(ctx, "alert-1", &entity.HelpResponse{
			UserID:    "helper",
			UserName:  "Sam",
			Message:   "On my way",
			Timestamp: fx.now,
		}).
		Return(nil)

	err := fx.service.RespondToAlert(ctx, &entity.Identity{UID: "helper", DisplayName: "Sam"}, "alert-1", "On my way")
	require.NoError(t, err)
}

func TestAlertService_RespondToAlert_NotFound(t *testing.T) {
	fx := newTestAlertService(t)
	ctx := context.Background()

	fx.alertRepo.EXPECT().AddResponse(ctx, "missing", mock.Anything).Return(repository.ErrAlertNotFound)

	err := fx.service.RespondToAlert(ctx, &entity.Identity{UID: "helper"}, "missing", "On my way")
	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
}

func TestAlertService_RespondToAlert_EmptyMessage(t *testing.T) {
	fx := newTestAlertService(t)

	err := fx.service.RespondToAlert(context.Background(), &entity.Identity{UID: "helper"}, "alert-1", "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAlertService_GetAlert(t *testing.T) {
	fx := newTestAlertService(t)
	ctx := context.Background()

	expected := &entity.Alert{ID: "alert-1", UserID: "other", Status: "active"}
	fx.alertRepo.EXPECT().FindByID(ctx, "alert-1").Return(expected, nil)
	fx.alertRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrAlertNotFound)

	alert, err := fx.service.GetAlert(ctx, "alert-1")
	require.NoError(t, err)
	assert.Equal(t, expected, alert)

	_, err = fx.service.GetAlert(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)

	_, err = fx.service.GetAlert(ctx, " ")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
