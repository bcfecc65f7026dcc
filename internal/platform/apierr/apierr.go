package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the failure result of a service operation. Code identifies the
// exact precondition that failed; Status is the HTTP status it maps to.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// NotFound: an entity id did not resolve.
func NotFound(code string, format string, args ...any) *Error {
	return New(http.StatusNotFound, code, fmt.Errorf(format, args...))
}

// InvalidRole: the actor (or referenced user) lacks the required role.
func InvalidRole(code string, format string, args ...any) *Error {
	return New(http.StatusForbidden, code, fmt.Errorf(format, args...))
}

// Inactive: the account is deactivated.
func Inactive(code string, format string, args ...any) *Error {
	return New(http.StatusForbidden, code, fmt.Errorf(format, args...))
}

// InvalidState: the target entity is not in the required status.
func InvalidState(code string, format string, args ...any) *Error {
	return New(http.StatusConflict, code, fmt.Errorf(format, args...))
}

// Duplicate: a uniqueness invariant would be violated.
func Duplicate(code string, format string, args ...any) *Error {
	return New(http.StatusConflict, code, fmt.Errorf(format, args...))
}

// Invalid: malformed or out-of-range input.
func Invalid(code string, format string, args ...any) *Error {
	return New(http.StatusBadRequest, code, fmt.Errorf(format, args...))
}

// From unwraps err into an *Error, or nil when err carries no API error.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// Status returns the HTTP status for err, defaulting to 500.
func Status(err error) int {
	if apiErr := From(err); apiErr != nil && apiErr.Status != 0 {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// Code returns the taxonomy code for err, defaulting to "internal".
func Code(err error) string {
	if apiErr := From(err); apiErr != nil && apiErr.Code != "" {
		return apiErr.Code
	}
	return "internal"
}
