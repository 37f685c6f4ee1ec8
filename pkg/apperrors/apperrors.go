// Package apperrors defines the error kinds shared by the sports services.
// Callers match on the kind with errors.Is; the DomainError carries the detail.
package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation error")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrBusinessRule      = errors.New("business rule violation")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g. "enrollment", "tournament"
	Op      string // operation that failed, e.g. "Enroll"
	Kind    error  // one of the kinds above
	Message string // human-readable message
	Err     error  // underlying error (optional)
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error, falling back to the kind.
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is matching against the kind and the wrapped error.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// New creates a new domain error.
func New(domain, op string, kind error, message string) *DomainError {
	return &DomainError{Domain: domain, Op: op, Kind: kind, Message: message}
}

func NotFound(domain, op, format string, args ...any) *DomainError {
	return New(domain, op, ErrNotFound, fmt.Sprintf(format, args...))
}

func Validation(domain, op, format string, args ...any) *DomainError {
	return New(domain, op, ErrValidation, fmt.Sprintf(format, args...))
}

func InvalidTransition(domain, op, format string, args ...any) *DomainError {
	return New(domain, op, ErrInvalidTransition, fmt.Sprintf(format, args...))
}

func BusinessRule(domain, op, format string, args ...any) *DomainError {
	return New(domain, op, ErrBusinessRule, fmt.Sprintf(format, args...))
}

// Message returns the human-readable part of err when it is a DomainError,
// and err.Error() otherwise.
func Message(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
