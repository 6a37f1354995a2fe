package identity

import (
	"context"
	"log/slog"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// firebaseVerifier checks Firebase ID tokens issued to the web client
type firebaseVerifier struct {
	client idTokenVerifier
	logger *slog.Logger
}

// NewFirebaseVerifier creates an IdentityVerifier backed by Firebase Auth
func NewFirebaseVerifier(client *auth.Client, logger *slog.Logger) service.IdentityVerifier {
	return &firebaseVerifier{client: client, logger: logger}
}

func (v *firebaseVerifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingToken)
	}

	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		v.logger.Debug("Firebase ID token rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return &entity.Identity{
		UID:         decoded.UID,
		Email:       stringClaim(decoded.Claims, "email"),
		DisplayName: stringClaim(decoded.Claims, "name"),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
