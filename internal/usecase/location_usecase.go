package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/proximity"
)

// LocationUsecase defines the interface for location sharing and nearest-user lookups
type LocationUsecase interface {
	// UpdateLocation stores the caller's latest position.
	UpdateLocation(ctx context.Context, identity *entity.Identity, position proximity.Position) error

	// NearestUsers ranks the other tracked users by distance from position.
	// An unreachable location store yields an empty result, not an error.
	NearestUsers(ctx context.Context, userID string, position proximity.Position) ([]proximity.RankedResult, error)
}
