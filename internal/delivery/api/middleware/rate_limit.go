package middleware

import (
	"net/http"
	"time"

	"lifeline/config"
	"lifeline/internal/delivery/api/response"
	deliverycontext "lifeline/internal/delivery/context"
	domainerrors "lifeline/internal/domain/errors"

	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

const defaultRequestsPerMinute = 30

// NewRateLimiter limits requests per verified caller, or per client IP before
// authentication. Every route the returned middleware is attached to shares one
// budget; build one limiter per budget.
func NewRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	requests := defaultRequestsPerMinute
	if cfg.RateLimit != nil && cfg.RateLimit.RequestsPerMinute > 0 {
		requests = cfg.RateLimit.RequestsPerMinute
	}

	return echo.WrapMiddleware(httprate.Limit(
		requests,
		time.Minute,
		httprate.WithKeyFuncs(keyByCaller),
		httprate.WithLimitHandler(writeRateLimited),
	))
}

// keyByCaller keys on the user id set by the auth middleware. Behind the Cloud
// Run front end every request shares a peer address, so the IP fallback reads
// the forwarded client address.
func keyByCaller(r *http.Request) (string, error) {
	if identity, ok := deliverycontext.GetIdentityFromContext(r.Context()); ok && identity.UID != "" {
		return "uid:" + identity.UID, nil
	}

	ip, err := httprate.KeyByRealIP(r)
	if err != nil {
		return "", err
	}

	return "ip:" + ip, nil
}

func writeRateLimited(w http.ResponseWriter, r *http.Request) {
	body := response.NewErrorResponse(
		domainerrors.ErrRateLimited.HTTPCode(),
		domainerrors.ErrRateLimited.ErrorCode(),
		domainerrors.ErrRateLimited.Message(),
		nil,
		deliverycontext.GetRequestIDFromContext(r.Context()),
	)

	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(body)
}
