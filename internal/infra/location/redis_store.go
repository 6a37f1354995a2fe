package location

import (
	"context"
	"log/slog"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/proximity"
	"lifeline/internal/domain/repository"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultRedisKey = "lifeline:locations"

// redisStore keeps every location as one field of a single Redis hash keyed by user id
type redisStore struct {
	client redis.UniversalClient
	key    string
	logger *slog.Logger
}

// NewRedisStore creates a LocationRepository backed by a Redis hash
func NewRedisStore(client redis.UniversalClient, key string, logger *slog.Logger) repository.LocationRepository {
	if key == "" {
		key = defaultRedisKey
	}

	return &redisStore{client: client, key: key, logger: logger}
}

func (s *redisStore) Snapshot(ctx context.Context) ([]proximity.TrackedUser, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, domainerrors.NewStoreError(errors.WithStack(err), "hgetall "+s.key)
	}

	entries := make(map[string]json.RawMessage, len(fields))
	for userID, raw := range fields {
		entries[userID] = json.RawMessage(raw)
	}

	return toTrackedUsers(decodeRecords(entries, s.logger)), nil
}

func (s *redisStore) Update(ctx context.Context, location *entity.UserLocation) error {
	data, err := json.Marshal(newRecord(location))
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.client.HSet(ctx, s.key, location.UserID, data).Err(); err != nil {
		return domainerrors.NewStoreError(errors.WithStack(err), "hset "+s.key)
	}

	return nil
}
