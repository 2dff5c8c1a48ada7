// Package shared contains common domain types and errors used across the
// domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// ErrParse: the input is not well-formed (broken XML, non-integer grade token).
	ErrParse = errors.New("parse error")

	// ErrFormat: a well-formed value has the wrong format (non-integer group).
	ErrFormat = errors.New("format error")

	// ErrIO: a file cannot be opened, read or written.
	ErrIO = errors.New("i/o error")

	// ErrInvalidInput: user-supplied arguments are missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "roster", "xmlfile"
	Op      string // Operation that failed, e.g., "Load", "Select"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// IsParse checks if the error is a parse error.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsFormat checks if the error is a format error.
func IsFormat(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsIO checks if the error is an I/O error.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsInvalidInput checks if the error is caused by bad user input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
