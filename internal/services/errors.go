package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an identifier has no record in the store.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a request field that fails a format or range
// constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ReferenceError reports a consultation reference that does not resolve to an
// existing record. It unwraps to a ValidationError, so callers treating it as
// a validation failure via errors.As keep working.
type ReferenceError struct {
	Field string
	ID    uuid.UUID
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %s does not resolve to an existing record", e.Field, e.ID)
}

func (e *ReferenceError) Unwrap() error {
	return &ValidationError{Field: e.Field, Reason: "does not resolve to an existing record"}
}

// ConflictError reports a uniqueness violation on a business key.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q is already in use", e.Field, e.Value)
}
