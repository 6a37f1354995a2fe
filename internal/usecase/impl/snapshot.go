// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/proximity"
	"lifeline/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	defaultSnapshotTimeout = 3 * time.Second
	defaultActiveWindow    = 30 * time.Minute
)

// NewRanker builds the proximity ranker from the proximity config block.
func NewRanker(cfg *config.Config) *proximity.Ranker {
	if cfg.Proximity == nil {
		return proximity.NewRanker(proximity.Config{})
	}

	return proximity.NewRanker(proximity.Config{
		Limit:         cfg.Proximity.Limit,
		EarthRadiusKm: cfg.Proximity.EarthRadiusKm,
	})
}

// readSnapshot reads every tracked user, bounded by the store read timeout.
func readSnapshot(ctx context.Context, repo repository.LocationRepository, timeout time.Duration) ([]proximity.TrackedUser, error) {
	readCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	users, err := repo.Snapshot(readCtx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read location snapshot")
	}

	return users, nil
}

func snapshotTimeout(cfg *config.Config) time.Duration {
	if cfg.LocationStore != nil && cfg.LocationStore.ReadTimeout > 0 {
		return cfg.LocationStore.ReadTimeout
	}

	return defaultSnapshotTimeout
}

func activeWindow(cfg *config.Config) time.Duration {
	if cfg.AlertStore != nil && cfg.AlertStore.ActiveWindow > 0 {
		return cfg.AlertStore.ActiveWindow
	}

	return defaultActiveWindow
}
