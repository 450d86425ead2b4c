package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
)

// Engine faults. Each one is terminal for the operation it occurs in.
var (
	// ErrClassifierFault: the oracle failed, timed out, or answered with a
	// category outside the fixed enumeration.
	ErrClassifierFault = errors.New("classifier fault")
	// ErrNameExtraction: Person was chosen but no name could be derived.
	ErrNameExtraction = errors.New("name extraction failure")
	// ErrUnknownMessage: a correction references a message with no inbox log entry.
	ErrUnknownMessage = errors.New("unknown message")
	// ErrStoreWrite: the record store rejected or timed out on a write.
	ErrStoreWrite = errors.New("store write fault")
	// ErrAmbiguousName: a profile lookup matched more than one person.
	ErrAmbiguousName = errors.New("ambiguous name")
	// ErrDuplicateMessage: the message id already has an inbox log entry.
	ErrDuplicateMessage = errors.New("duplicate message")
	// ErrNoPending: there is no unexpired pending confirmation to resolve.
	ErrNoPending = errors.New("no pending confirmation")
	// ErrUnknownCategory: a category name or alias did not resolve.
	ErrUnknownCategory = errors.New("unknown category")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StoreWriteError marks err as a store write fault while keeping the cause
// reachable through errors.Is / errors.As.
func StoreWriteError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreWrite, err)
}
