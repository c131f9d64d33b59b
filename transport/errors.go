package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrTransport is wrapped by every failure returned by a connector
	ErrTransport = errors.New("transport failure")
	// ErrMalformedURL indicates a URL that is not absolute or has no host
	ErrMalformedURL = errors.New("malformed URL")
)

// Error reports a failed operation against a URL
type Error struct {
	Op  string
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.URL, e.Err)
}

// Unwrap exposes both ErrTransport and the underlying cause
func (e *Error) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// StatusError represents a non-2xx answer
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s from %q", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

func (e *StatusError) Unwrap() error {
	return ErrTransport
}

// IsNotFound checks if the error indicates a not found response
func (e *StatusError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsServerError checks if the upstream service failed
func (e *StatusError) IsServerError() bool {
	return e.StatusCode >= 500
}
