package validator

import (
	"testing"

	domainerrors "lifeline/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Token   string `json:"token" validate:"required"`
	Message string `json:"message" validate:"max=5"`
}

func TestValidate_Passes(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Token: "t", Message: "hi"}))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&sample{Message: "too long"})
	require.Error(t, err)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "token is required; message must be at most 5 characters", appErr.Details())
}
