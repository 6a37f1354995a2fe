package context

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetIdentity stores the verified caller in echo.Context and in the request context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
}

// GetIdentity returns the verified caller set by the auth middleware.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	return echoValueOf[*entity.Identity](c, KeyIdentity)
}

func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentityFromContext extracts the caller identity from context.Context.
func GetIdentityFromContext(ctx context.Context) (*entity.Identity, bool) {
	return valueOf[*entity.Identity](ctx, KeyIdentity)
}
