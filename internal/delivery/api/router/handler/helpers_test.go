package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "lifeline/internal/delivery/api/middleware"
	"lifeline/internal/delivery/api/response"
	"lifeline/internal/delivery/api/validator"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testCaller = &entity.Identity{UID: "U1", Email: "alice@example.com", DisplayName: "Alice"}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newTestEcho builds an echo instance wired like the API server, with the
// caller already authenticated.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.JSONSerializer = response.JSONSerializer{}
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetIdentity(c, testCaller)

			return next(c)
		}
	})

	return e
}

type echoServer struct {
	*echo.Echo
}

func (s *echoServer) do(method, target, body string) *httptest.ResponseRecorder {
	return doJSON(s.Echo, method, target, body)
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func assertStatus(t *testing.T, want int, rec *httptest.ResponseRecorder) {
	t.Helper()

	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}

