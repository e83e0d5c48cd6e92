// Package apperr carries the error kinds the HTTP layer distinguishes
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalid marks a rejected request: bad input or a disallowed transition
	ErrInvalid = errors.New("invalid request")
	// ErrSignedOut marks an operation that needs a Google session
	ErrSignedOut = errors.New("sign-in required")
	// ErrForbidden marks a failed secondary check such as a vault PIN
	ErrForbidden = errors.New("forbidden")
)

// Failure pairs a user-readable message with the underlying cause
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return f.Message
	}
	return f.Message + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Fail wraps err with a message meant for the user
func Fail(message string, err error) error {
	return &Failure{Message: message, Err: err}
}

// Invalid builds an ErrInvalid with detail
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Message returns the text to show the user
func Message(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Message
	}
	return err.Error()
}

// Status maps an error to an HTTP status code
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, ErrSignedOut):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
