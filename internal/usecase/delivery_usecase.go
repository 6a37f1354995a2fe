package usecase

import (
	"context"
	"fmt"

	"lifeline/internal/domain/service"

	"github.com/pkg/errors"
)

// DeliveryReport summarizes the push fan-out of one SOS event
type DeliveryReport struct {
	Recipients    int
	Tokens        int
	Sent          int
	Failed        int
	InvalidTokens int
}

// AlertDeliveryUsecase delivers queued SOS events to recipient devices
type AlertDeliveryUsecase interface {
	// Deliver sends the event to every recipient with a registered device.
	// Errors wrapped with NewRetryableError should be redelivered.
	Deliver(ctx context.Context, event *service.SosEvent) (*DeliveryReport, error)
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}
