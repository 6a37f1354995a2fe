// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a user document does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository reads user documents and their push tokens.
type ProfileRepository interface {
	FindByID(ctx context.Context, uid string) (*entity.Profile, error)

	// SetFCMToken stores the device token on the user's document, creating it if needed.
	SetFCMToken(ctx context.Context, uid, token string) error

	// FindFCMTokens returns the tokens of the given users; users without a token are omitted.
	FindFCMTokens(ctx context.Context, uids []string) ([]entity.DeviceToken, error)

	// ClearFCMToken removes a token that the push service reported as invalid.
	ClearFCMToken(ctx context.Context, uid string) error
}
