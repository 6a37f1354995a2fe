package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/service"
	mockUsecase "lifeline/internal/mocks/usecase"
	"lifeline/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(uc usecase.AlertDeliveryUsecase) *PushHandler {
	return &PushHandler{
		validateToken: idtoken.Validate,
		logger:        slog.New(slog.DiscardHandler),
		deliveryUC:    uc,
	}
}

func pushBody(t *testing.T, event *service.SosEvent, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.AlertID
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/sos-alerts-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func servePush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func sampleEvent() *service.SosEvent {
	return &service.SosEvent{
		AlertID:       "alert_1",
		RequesterID:   "U1",
		RequesterName: "Alice",
		Latitude:      37.7749,
		Longitude:     -122.4194,
		Message:       "Need help",
		EmergencyType: "medical",
		RecipientIDs:  []string{"U2", "U4"},
	}
}

func TestHandlePush_DeliversEvent(t *testing.T) {
	uc := mockUsecase.NewMockAlertDeliveryUsecase(t)
	uc.EXPECT().Deliver(mock.Anything, mock.MatchedBy(func(event *service.SosEvent) bool {
		return event.AlertID == "alert_1" && len(event.RecipientIDs) == 2
	})).RunAndReturn(func(ctx context.Context, _ *service.SosEvent) (*usecase.DeliveryReport, error) {
		assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))

		return &usecase.DeliveryReport{Recipients: 2, Tokens: 2, Sent: 2}, nil
	})

	rec := servePush(newTestHandler(uc), pushBody(t, sampleEvent(), map[string]string{"request_id": "req-from-attributes"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RetryableFailureAsksForRedelivery(t *testing.T) {
	uc := mockUsecase.NewMockAlertDeliveryUsecase(t)
	uc.EXPECT().Deliver(mock.Anything, mock.Anything).
		Return(nil, usecase.NewRetryableError(errors.New("firestore unavailable")))

	rec := servePush(newTestHandler(uc), pushBody(t, sampleEvent(), nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_PermanentFailureIsAcknowledged(t *testing.T) {
	uc := mockUsecase.NewMockAlertDeliveryUsecase(t)
	uc.EXPECT().Deliver(mock.Anything, mock.Anything).Return(nil, errors.New("sos event without alert id"))

	rec := servePush(newTestHandler(uc), pushBody(t, &service.SosEvent{}, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_BadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockAlertDeliveryUsecase(t)

			rec := servePush(newTestHandler(uc), []byte(tt.body), nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_VerifiesGoogleToken(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		payload    *idtoken.Payload
		validErr   error
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", validErr: errors.New("bad signature"), wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer tok", payload: &idtoken.Payload{Issuer: "evil.example.com"}, wantStatus: http.StatusUnauthorized},
		{
			name:       "unverified email",
			header:     "Bearer tok",
			payload:    &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus: http.StatusUnauthorized,
		},
		{name: "valid", header: "Bearer tok", payload: &idtoken.Payload{Issuer: "accounts.google.com"}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockAlertDeliveryUsecase(t)
			if tt.wantStatus == http.StatusOK {
				uc.EXPECT().Deliver(mock.Anything, mock.Anything).Return(&usecase.DeliveryReport{}, nil)
			}

			h := newTestHandler(uc)
			h.verifyPushAuth = true
			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "http://example.com/push", audience)

				return tt.payload, tt.validErr
			}

			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}

			rec := servePush(h, pushBody(t, sampleEvent(), nil), header)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
