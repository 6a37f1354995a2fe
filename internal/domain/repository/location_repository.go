// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/proximity"
)

// LocationRepository reads and writes last-known user locations.
type LocationRepository interface {
	// Snapshot returns every tracked user ordered by id. Entries with missing
	// coordinates are returned as-is; the ranker skips them.
	Snapshot(ctx context.Context) ([]proximity.TrackedUser, error)

	// Update stores the user's latest position.
	Update(ctx context.Context, location *entity.UserLocation) error
}
