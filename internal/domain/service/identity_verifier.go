package service

import (
	"context"

	"lifeline/internal/domain/entity"
)

// IdentityVerifier resolves a bearer token to the caller's identity.
// Implementations return an error matching errors.ErrUnauthorized for bad tokens.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}
