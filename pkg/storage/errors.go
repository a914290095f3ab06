package storage

import (
	"errors"

	apperrors "eventhub/pkg/errors"
)

var (
	// ErrUnavailable is returned by every operation of a gateway that has no
	// live connection, and wraps connection-level failures of a live one.
	ErrUnavailable = errors.New("storage unavailable")

	ErrUnexpectedID = errors.New("storage returned a non-ObjectID identifier")
)

// AppError maps a gateway failure to the client-facing taxonomy: an
// unreachable store is a 503, anything else an internal error.
func AppError(err error, message string) *apperrors.AppError {
	if errors.Is(err, ErrUnavailable) {
		return apperrors.Unavailable("Database", err)
	}
	return apperrors.Internal(message, err)
}
