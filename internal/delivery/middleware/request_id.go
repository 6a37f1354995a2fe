// Package middleware contains echo middlewares shared by the API server and the alert worker.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "lifeline/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	maxRequestIDLength = 128

	// headerCloudTrace is set by Cloud Run and the Pub/Sub push front end as "TRACE_ID/SPAN_ID;o=1".
	headerCloudTrace = "X-Cloud-Trace-Context"
)

// RequestIDMiddleware tags every request with an id and a logger carrying it
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process resolves the request id and stores it, with a child logger, in both contexts
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := resolveRequestID(c.Request().Header)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// resolveRequestID prefers the client id, then the platform trace id, then a new UUID.
func resolveRequestID(header http.Header) string {
	if id := usableID(header.Get(deliverycontext.HeaderXRequestID)); id != "" {
		return id
	}

	trace, _, _ := strings.Cut(header.Get(headerCloudTrace), "/")
	if id := usableID(trace); id != "" {
		return id
	}

	return uuid.NewString()
}

func usableID(raw string) string {
	id := strings.TrimSpace(raw)
	if len(id) > maxRequestIDLength {
		return ""
	}

	return id
}
