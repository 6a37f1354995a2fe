package location

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/proximity"
	"lifeline/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRedisStore(t *testing.T) (repository.LocationRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, "test:locations", discardLogger()), mr
}

func storeCases(t *testing.T) map[string]repository.LocationRepository {
	redisStore, _ := newRedisStore(t)

	return map[string]repository.LocationRepository{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}
}

func TestStore_UpdateThenSnapshotOrderedByID(t *testing.T) {
	updatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, store := range storeCases(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			for _, loc := range []*entity.UserLocation{
				{UserID: "u3", Latitude: 3, Longitude: 3, DisplayName: "Carol", UpdatedAt: updatedAt},
				{UserID: "u1", Latitude: 1, Longitude: 1, UpdatedAt: updatedAt},
				{UserID: "u2", Latitude: 2, Longitude: 2, DisplayName: "Bob", UpdatedAt: updatedAt},
			} {
				require.NoError(t, store.Update(ctx, loc))
			}
			require.NoError(t, store.Update(ctx, &entity.UserLocation{UserID: "u1", Latitude: 10, Longitude: 11}))

			users, err := store.Snapshot(ctx)
			require.NoError(t, err)

			require.Len(t, users, 3)
			assert.Equal(t, []proximity.TrackedUser{
				{ID: "u1", DisplayName: "User", Position: proximity.NewPosition(10, 11)},
				{ID: "u2", DisplayName: "Bob", Position: proximity.NewPosition(2, 2)},
				{ID: "u3", DisplayName: "Carol", Position: proximity.NewPosition(3, 3)},
			}, users)
		})
	}
}

func TestStore_EmptySnapshot(t *testing.T) {
	for name, store := range storeCases(t) {
		t.Run(name, func(t *testing.T) {
			users, err := store.Snapshot(context.Background())
			require.NoError(t, err)
			assert.Empty(t, users)
		})
	}
}

func TestRedisStore_KeepsPartialEntriesAndSkipsMalformed(t *testing.T) {
	store, mr := newRedisStore(t)

	mr.HSet("test:locations", "partial", `{"latitude":37.7751}`)
	mr.HSet("test:locations", "broken", `{not json`)
	mr.HSet("test:locations", "stringly", `{"latitude":"37.7","longitude":-122.4}`)

	users, err := store.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, users, 1)
	assert.Equal(t, "partial", users[0].ID)
	assert.Nil(t, users[0].Position.Longitude)
	require.NotNil(t, users[0].Position.Latitude)
	assert.InDelta(t, 37.7751, *users[0].Position.Latitude, 1e-9)
}

func TestDecodeRecords_SkipsOnlyMalformedEntries(t *testing.T) {
	var entries map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(`{
		"U1": {"latitude": 37.7749, "longitude": -122.4194, "displayName": "Alice"},
		"U9": {"latitude": "37.7", "longitude": -122.4},
		"U5": null,
		"U3": {"latitude": 37.78, "longitude": -122.41}
	}`), &entries))

	users := toTrackedUsers(decodeRecords(entries, discardLogger()))

	ids := make([]string, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}
	assert.Equal(t, []string{"U1", "U3", "U5"}, ids)
	assert.Equal(t, "Alice", users[0].DisplayName)
	assert.Nil(t, users[2].Position.Latitude)
}

func TestRedisStore_UnavailableIsUpstreamError(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Snapshot(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)

	err = store.Update(context.Background(), &entity.UserLocation{UserID: "u1"})
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRecord_Timestamp(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, at.UnixMilli(), newRecord(&entity.UserLocation{UpdatedAt: at}).Timestamp)
	assert.Zero(t, newRecord(&entity.UserLocation{}).Timestamp)
}
