package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors for the application's error taxonomy.
// Handlers map these to HTTP status codes via errors.Is.
var (
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInternal           = errors.New("internal error")
)

type AppError struct {
	Err     error  // sentinel (and/or wrapped cause)
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Unauthorized means no credential was presented at all.
// HTTP handlers map this to 401.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}

// InvalidCredentials is the single login-failure outcome. Whether the email
// is unknown or the password is wrong, callers get this same value with this
// same message — the difference must never be observable.
func InvalidCredentials() *AppError {
	return &AppError{
		Err:     ErrInvalidCredentials,
		Message: "invalid email or password",
	}
}

// Forbidden means a credential was presented but did not check out.
// HTTP handlers map this to 403.
func Forbidden(message string) *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: message,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}

// Internal wraps an unexpected failure (store, hashing, encoding). The cause
// is kept on the chain for the error response's diagnostic detail; the
// message stays generic.
func Internal(err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrInternal, err),
		Message: "an internal error occurred",
	}
}
