// Package context carries request-scoped values between the HTTP layer and the
// usecases: the request id, a logger tagged with it and the caller identity.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyIdentity  ContextKey = "identity"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// valueOf reads a typed value stored under key, reporting false for the zero value.
func valueOf[T comparable](ctx context.Context, key ContextKey) (T, bool) {
	var zero T
	v, ok := ctx.Value(key).(T)
	if !ok || v == zero {
		return zero, false
	}

	return v, true
}

// echoValueOf prefers the echo.Context store and falls back to the request context.
func echoValueOf[T comparable](c echo.Context, key ContextKey) (T, bool) {
	var zero T
	if v, ok := c.Get(string(key)).(T); ok && v != zero {
		return v, true
	}

	return valueOf[T](c.Request().Context(), key)
}

// GetRequestID returns the request id for c, or a fresh UUID when none was set.
func GetRequestID(c echo.Context) string {
	if id, ok := echoValueOf[string](c, KeyRequestID); ok {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request id, or "" when absent.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := valueOf[string](ctx, KeyRequestID)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil when absent.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := valueOf[*slog.Logger](ctx, KeyLogger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := valueOf[*slog.Logger](ctx, KeyLogger); ok {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
