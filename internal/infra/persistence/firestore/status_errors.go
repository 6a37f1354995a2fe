package firestore

import (
	domainerrors "lifeline/internal/domain/errors"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// toStoreError maps transient Firestore failures to an upstream error and wraps the rest.
func toStoreError(err error, details string) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return domainerrors.NewStoreError(errors.WithStack(err), details)
	default:
		return errors.Wrap(err, details)
	}
}
