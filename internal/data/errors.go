package data

import (
	"errors"

	apperrors "github.com/monastery360/m360-api/internal/errors"
)

// Shared sentinel errors for data-layer repositories.
var (
	ErrMonasteryNotFound  = errors.New("monastery not found")
	ErrManuscriptNotFound = errors.New("manuscript not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrEventFull          = errors.New("event is at capacity")
	ErrBookingNotFound    = errors.New("booking not found")
)

// mapPgError translates PostgreSQL errors into application error codes.
// Errors MapDBError does not recognize are wrapped as internal with the
// operation context.
func mapPgError(err error, context string) error {
	if err == nil {
		return nil
	}
	mapped := apperrors.MapDBError(err)
	var appErr *apperrors.AppError
	if errors.As(mapped, &appErr) {
		return mapped
	}
	return apperrors.Wrap(err, apperrors.ErrCodeInternal, context)
}
