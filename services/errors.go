package services

import (
	"errors"
	"fmt"
)

// Business errors shared by the services. Controllers map these to HTTP
// status codes; messages are human-readable and safe to surface.
var (
	ErrNotFound          = errors.New("not_found")
	ErrRoomUnavailable   = errors.New("room_unavailable")
	ErrRoomBusy          = errors.New("room_busy")
	ErrInsufficientStock = errors.New("insufficient_stock")
	ErrInvalidState      = errors.New("invalid_state")
	ErrInvalidTransition = errors.New("invalid_transition")

	ErrInvalidCredentials   = errors.New("invalid_credentials")
	ErrSubscriptionInactive = errors.New("subscription_inactive")
)

// ValidationError reports malformed or out-of-range input. It is
// user-correctable and maps to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
