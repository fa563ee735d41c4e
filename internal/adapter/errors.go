package adapter

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrUnexpectedStatus is wrapped by every [*StatusError].
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrUnknownAction is returned for an action outside the supported set.
	ErrUnknownAction = errors.New("unknown counter action")
	// ErrMissingValue is returned for a success response without a value.
	ErrMissingValue = errors.New("response has no counter value")
)

// StatusError describes a non-2xx backend response.
type StatusError struct {
	// Method is the HTTP method of the failed request.
	Method string
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Body is the whitespace-trimmed response body.
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: http %d: %s", e.Method, e.StatusCode, e.Detail())
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// Detail returns the response body, or the status code when the body is
// empty.
func (e *StatusError) Detail() string {
	if e.Body == "" {
		return strconv.Itoa(e.StatusCode)
	}
	return e.Body
}
