// Package domainerrors provides coded errors shared across feature modules.
//
// User-input validation failures are NOT domain errors: they are field-scoped
// messages carried in result values so callers can render them next to form
// fields. Domain errors cover programming faults, missing records, and
// infrastructure failures.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for transport mapping and logging.
type Code string

const (
	CodeInvalidInput       Code = "invalid_input"
	CodeNotFound           Code = "not_found"
	CodeInternal           Code = "internal"
	CodeInvariantViolation Code = "invariant_violation"
)

// DomainError pairs a classification code with a human-readable message and
// an optional wrapped cause.
type DomainError struct {
	ErrCode Code
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// New constructs a DomainError with no underlying cause.
func New(code Code, message string) error {
	return &DomainError{ErrCode: code, Message: message}
}

// Wrap annotates err with a code and message while preserving the chain.
func Wrap(err error, code Code, message string) error {
	return &DomainError{ErrCode: code, Message: message, Cause: err}
}

// GetCode returns the code of the outermost DomainError in the chain, or
// CodeInternal when err carries no code.
func GetCode(err error) Code {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrCode
	}
	return CodeInternal
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *DomainError
	for errors.As(err, &de) {
		if de.ErrCode == code {
			return true
		}
		err = de.Cause
		de = nil
		if err == nil {
			return false
		}
	}
	return false
}
