package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesDetailedCopies(t *testing.T) {
	detailed := ErrInvalidInput.WithDetails("latitude is required")

	assert.ErrorIs(t, detailed, ErrInvalidInput)
	assert.ErrorIs(t, errors.Wrap(detailed, "rank nearest"), ErrInvalidInput)
	assert.NotErrorIs(t, detailed, ErrUnauthorized)
	assert.Equal(t, "Invalid input: latitude is required", detailed.Error())
	assert.Equal(t, "latitude is required", detailed.Details())
}

func TestBaseError_AsAppError(t *testing.T) {
	err := errors.Wrap(ErrAlertNotFound, "respond to alert")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "ALERT_NOT_FOUND", appErr.ErrorCode())
}

func TestStoreError_IsUpstreamUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	err := errors.WithStack(NewStoreError(cause, "locations snapshot"))

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, cause)

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "locations snapshot", appErr.Details())
}
