package location

import (
	"context"
	"log/slog"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/proximity"
	"lifeline/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const defaultRTDBPath = "locations"

// rtdbStore reads locations from the Firebase Realtime Database, where the web
// client also writes them directly.
type rtdbStore struct {
	client *db.Client
	path   string
	logger *slog.Logger
}

// NewRTDBStore creates a LocationRepository backed by the Realtime Database
func NewRTDBStore(client *db.Client, path string, logger *slog.Logger) repository.LocationRepository {
	if path == "" {
		path = defaultRTDBPath
	}

	return &rtdbStore{client: client, path: path, logger: logger}
}

func (s *rtdbStore) Snapshot(ctx context.Context) ([]proximity.TrackedUser, error) {
	var entries map[string]json.RawMessage
	if err := s.client.NewRef(s.path).Get(ctx, &entries); err != nil {
		return nil, domainerrors.NewStoreError(errors.WithStack(err), "read "+s.path)
	}

	if len(entries) == 0 {
		return nil, domainerrors.NewStoreError(errors.New("no locations stored"), "read "+s.path)
	}

	return toTrackedUsers(decodeRecords(entries, s.logger)), nil
}

func (s *rtdbStore) Update(ctx context.Context, location *entity.UserLocation) error {
	ref := s.client.NewRef(s.path).Child(location.UserID)
	if err := ref.Set(ctx, newRecord(location)); err != nil {
		return domainerrors.NewStoreError(errors.WithStack(err), "write "+s.path)
	}

	s.logger.Debug("Location written to realtime database",
		slog.String("user_id", location.UserID),
	)

	return nil
}
