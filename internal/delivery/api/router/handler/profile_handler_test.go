package handler

import (
	"net/http"
	"testing"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	mockUsecase "lifeline/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProfileEcho(uc *mockUsecase.MockProfileUsecase) *echoServer {
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: uc})
	e := newTestEcho()
	e.GET("/user/profile", h.GetProfile)
	e.POST("/api/devices/token", h.RegisterDeviceToken)
	e.GET("/health", HealthCheck)

	return &echoServer{e}
}

func TestProfileHandler_GetProfile(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	uc.EXPECT().GetProfile(mock.Anything, "U1").Return(&entity.Profile{
		UID:         "U1",
		Email:       "alice@example.com",
		DisplayName: "Alice",
		FCMToken:    "secret-token",
	}, nil)

	rec := newProfileEcho(uc).do(http.MethodGet, "/user/profile", "")

	assertStatus(t, http.StatusOK, rec)
	assert.JSONEq(t, `{"profile":{"uid":"U1","email":"alice@example.com","displayName":"Alice"}}`, rec.Body.String())
}

func TestProfileHandler_GetProfileNotFound(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	uc.EXPECT().GetProfile(mock.Anything, "U1").Return(nil, errors.WithStack(domainerrors.ErrProfileNotFound))

	rec := newProfileEcho(uc).do(http.MethodGet, "/user/profile", "")

	assertStatus(t, http.StatusNotFound, rec)
	assert.Equal(t, "PROFILE_NOT_FOUND", errorCode(t, rec))
}

func TestProfileHandler_RegisterDeviceToken(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	uc.EXPECT().RegisterDeviceToken(mock.Anything, "U1", "fcm-token-1").Return(nil)

	rec := newProfileEcho(uc).do(http.MethodPost, "/api/devices/token", `{"token":"fcm-token-1"}`)

	assertStatus(t, http.StatusOK, rec)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
}

func TestProfileHandler_RegisterDeviceTokenRequiresToken(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)

	rec := newProfileEcho(uc).do(http.MethodPost, "/api/devices/token", `{}`)

	assertStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestHealthCheck(t *testing.T) {
	rec := newProfileEcho(mockUsecase.NewMockProfileUsecase(t)).do(http.MethodGet, "/health", "")

	assertStatus(t, http.StatusOK, rec)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
