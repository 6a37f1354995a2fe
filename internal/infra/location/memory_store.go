package location

import (
	"context"
	"sync"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/proximity"
	"lifeline/internal/domain/repository"
)

// memoryStore keeps locations in process memory
type memoryStore struct {
	mu      sync.RWMutex
	records map[string]record
}

// NewMemoryStore creates an in-memory LocationRepository
func NewMemoryStore() repository.LocationRepository {
	return &memoryStore{records: make(map[string]record)}
}

func (s *memoryStore) Snapshot(ctx context.Context) ([]proximity.TrackedUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return toTrackedUsers(s.records), nil
}

func (s *memoryStore) Update(ctx context.Context, location *entity.UserLocation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[location.UserID] = newRecord(location)

	return nil
}
