package itunes

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidInput indicates a parameter value that is out of range or incompatible with another parameter
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidState indicates a request that cannot be built because a mandatory field is missing
	ErrInvalidState = errors.New("invalid state")
	// ErrParse indicates a response body that could not be decoded
	ErrParse = errors.New("parse error")
)

// InputError describes a rejected parameter value
type InputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInputError is a shorthand for the request builders
func NewInputError(field string, value any, reason string) error {
	return &InputError{Field: field, Value: value, Reason: reason}
}

// StateError describes a request that is not ready to be serialized
type StateError struct {
	Reason string
}

func (e *StateError) Error() string {
	return "invalid state: " + e.Reason
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}

// ParseError wraps a decoding failure together with the beginning of the offending body
type ParseError struct {
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("failed to parse response: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse response %q: %v", e.Snippet, e.Err)
}

// Unwrap returns both the sentinel and the decoder error so either can be matched
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
