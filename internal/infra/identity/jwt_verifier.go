package identity

import (
	"context"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtVerifier accepts HS256 tokens signed with a shared secret, for local
// development and integration tests without a Firebase project.
type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier creates an IdentityVerifier for locally signed tokens
func NewJWTVerifier(secret string) (service.IdentityVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtVerifier{secret: []byte(secret)}, nil
}

func (v *jwtVerifier) Verify(_ context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingToken)
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized.WithDetails(err.Error()))
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("token has no subject"))
	}

	return &entity.Identity{
		UID:         subject,
		Email:       stringClaim(claims, "email"),
		DisplayName: stringClaim(claims, "name"),
	}, nil
}
