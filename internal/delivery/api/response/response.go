// Package response renders the error envelope shared by every endpoint.
// Successful responses keep the plain bodies clients already consume.
package response

import (
	"net/http"

	deliverycontext "lifeline/internal/delivery/context"
	domainerrors "lifeline/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "INVALID_INPUT"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Status is the body of endpoints that only acknowledge a write.
type Status struct {
	Status string `json:"status"`
}

// StatusSuccess acknowledges a completed write.
var StatusSuccess = Status{Status: "success"}

// NewErrorResponse builds the envelope. Details are dropped for 5xx and
// authentication or authorization errors.
func NewErrorResponse(statusCode int, errorCode, message string, details any, requestID string) *ErrorResponse {
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return &ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: requestID,
		},
	}
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return c.JSON(statusCode, NewErrorResponse(statusCode, errorCode, message, details, deliverycontext.GetRequestID(c)))
}

// AppError renders an application error with its details, when it has any.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return AppError(c, domainerrors.ErrInternalError)
}
