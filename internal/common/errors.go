package common

import (
	"errors"
	"net/http"
)

// Error kinds. Every business error unwraps to exactly one of these.
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("resource not found")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("conflict")
)

// Error is a business error carrying a user-facing message and its kind
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Business logic errors
var (
	// Post errors
	ErrPostNotFound  = newError(ErrNotFound, "post not found")
	ErrBoardNotFound = newError(ErrNotFound, "board does not exist")
	ErrPostGone      = newError(ErrBadRequest, "post does not exist")
	ErrLoginRequired = newError(ErrUnauthenticated, "login required")
	ErrNoPermission  = newError(ErrPermissionDenied, "no permission")

	// Auth errors
	ErrUserNotFound       = newError(ErrNotFound, "user not found")
	ErrUserAlreadyExists  = newError(ErrConflict, "user already exists")
	ErrInvalidCredentials = newError(ErrUnauthenticated, "invalid credentials")

	// Validation errors
	ErrInvalidInput = newError(ErrBadRequest, "invalid input")
)

// StatusOf maps an error to its HTTP status code
func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the user-facing message of a business error.
// Unknown errors are not exposed.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
