package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifeline/config"
	"lifeline/internal/delivery/api/middleware"
	"lifeline/internal/delivery/api/router"
	"lifeline/internal/delivery/api/router/handler"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/proximity"
	mockService "lifeline/internal/mocks/service"
	mockUsecase "lifeline/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testServer struct {
	echo     *echo.Echo
	verifier *mockService.MockIdentityVerifier
	location *mockUsecase.MockLocationUsecase
}

func newTestServer(t *testing.T, requestsPerMinute int) *testServer {
	t.Helper()

	cfg := &config.Config{RateLimit: &config.RateLimitConfig{RequestsPerMinute: requestsPerMinute}}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.DiscardHandler)

	verifier := mockService.NewMockIdentityVerifier(t)
	location := mockUsecase.NewMockLocationUsecase(t)

	e := newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AssistantHandler: handler.NewAssistantHandler(handler.AssistantHandlerParams{
			AssistantUC: mockUsecase.NewMockAssistantUsecase(t),
			Logger:      logger,
		}),
		LocationHandler: handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: location}),
		AlertHandler:    handler.NewAlertHandler(handler.AlertHandlerParams{AlertUC: mockUsecase.NewMockAlertUsecase(t)}),
		ProfileHandler:  handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: mockUsecase.NewMockProfileUsecase(t)}),
		AuthMiddleware:  middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Verifier: verifier, Logger: logger}),
		Config:          cfg,
	}).RegisterRoutes(e)

	return &testServer{echo: e, verifier: verifier, location: location}
}

func (s *testServer) post(target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthAndMetricsArePublic(t *testing.T) {
	s := newTestServer(t, 30)

	health := httptest.NewRecorder()
	s.echo.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)
	assert.NotEmpty(t, health.Header().Get(deliverycontext.HeaderXRequestID))

	metrics := httptest.NewRecorder()
	s.echo.ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "go_goroutines")
}

func TestServer_RejectsBadToken(t *testing.T) {
	s := newTestServer(t, 30)
	s.verifier.EXPECT().Verify(mock.Anything, "bad").Return(nil, errors.WithStack(domainerrors.ErrUnauthorized))

	rec := s.post("/api/nearest-users", "bad", `{"latitude":1,"longitude":2}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
}

func TestServer_AuthenticatedRequestReachesUsecase(t *testing.T) {
	s := newTestServer(t, 30)
	s.verifier.EXPECT().Verify(mock.Anything, "good").Return(&entity.Identity{UID: "U1"}, nil)
	s.location.EXPECT().NearestUsers(mock.Anything, "U1", proximity.NewPosition(1, 2)).Return([]proximity.RankedResult{}, nil)

	rec := s.post("/api/nearest-users", "good", `{"latitude":1,"longitude":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"nearest_users":[]}`, rec.Body.String())
}

func TestServer_BodyLimit(t *testing.T) {
	s := newTestServer(t, 30)

	rec := s.post("/api/location", "", `{"latitude":1,"longitude":2,"pad":"`+strings.Repeat("x", 2048)+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_CORSPreflight(t *testing.T) {
	s := newTestServer(t, 30)

	req := httptest.NewRequest(http.MethodOptions, "/api/send-sos", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
