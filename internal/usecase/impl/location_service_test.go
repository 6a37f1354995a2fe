package impl

import (
	"context"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/proximity"
	mockRepo "lifeline/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLocationService(t *testing.T) (*locationService, *mockRepo.MockLocationRepository) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	cfg := newTestConfig()

	svc := NewLocationService(LocationServiceParams{
		LocationRepo: locationRepo,
		Ranker:       NewRanker(cfg),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	}).(*locationService)

	return svc, locationRepo
}

func TestLocationService_UpdateLocation_Success(t *testing.T) {
	svc, locationRepo := newTestLocationService(t)
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	locationRepo.EXPECT().
		Update(ctx, &entity.UserLocation{
			UserID:      "user-1",
			Latitude:    25.03,
			Longitude:   121.56,
			DisplayName: "User",
			UpdatedAt:   now,
		}).
		Return(nil)

	err := svc.UpdateLocation(ctx, &entity.Identity{UID: "user-1"}, proximity.NewPosition(25.03, 121.56))
	require.NoError(t, err)
}

func TestLocationService_UpdateLocation_MissingCoordinate(t *testing.T) {
	svc, _ := newTestLocationService(t)
	lat := 25.03

	err := svc.UpdateLocation(context.Background(), &entity.Identity{UID: "user-1"}, proximity.Position{Latitude: &lat})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestLocationService_UpdateLocation_StoreError(t *testing.T) {
	svc, locationRepo := newTestLocationService(t)
	storeErr := domainerrors.NewStoreError(errors.New("permission denied"), "locations/user-1")

	locationRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.UserLocation")).Return(storeErr)

	err := svc.UpdateLocation(context.Background(), &entity.Identity{UID: "user-1"}, proximity.NewPosition(1, 1))
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestLocationService_NearestUsers_Success(t *testing.T) {
	svc, locationRepo := newTestLocationService(t)

	locationRepo.EXPECT().Snapshot(mock.Anything).Return([]proximity.TrackedUser{
		{ID: "far", Position: proximity.NewPosition(40.7128, -74.0060)},
		{ID: "me", Position: proximity.NewPosition(37.7749, -122.4194)},
		{ID: "near", DisplayName: "Neighbor", Position: proximity.NewPosition(37.7750, -122.4195)},
	}, nil)

	results, err := svc.NearestUsers(context.Background(), "me", proximity.NewPosition(37.7749, -122.4194))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "near", results[0].UserID)
	assert.Equal(t, "Neighbor", results[0].DisplayName)
	assert.Equal(t, "far", results[1].UserID)
}

func TestLocationService_NearestUsers_StoreUnavailableReturnsEmpty(t *testing.T) {
	svc, locationRepo := newTestLocationService(t)

	locationRepo.EXPECT().Snapshot(mock.Anything).Return(nil, errors.New("connection refused"))

	results, err := svc.NearestUsers(context.Background(), "me", proximity.NewPosition(1, 1))
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestLocationService_NearestUsers_InvalidPositionSkipsStore(t *testing.T) {
	svc, _ := newTestLocationService(t)
	lng := 10.0

	results, err := svc.NearestUsers(context.Background(), "me", proximity.Position{Longitude: &lng})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	assert.Nil(t, results)
}

func TestLocationService_NearestUsers_SnapshotReadIsBounded(t *testing.T) {
	svc, locationRepo := newTestLocationService(t)

	locationRepo.EXPECT().
		Snapshot(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]proximity.TrackedUser, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			return nil, nil
		})

	results, err := svc.NearestUsers(context.Background(), "me", proximity.NewPosition(1, 1))
	require.NoError(t, err)
	assert.Empty(t, results)
}
