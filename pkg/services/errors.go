package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a bot or user row does not exist.
var ErrNotFound = errors.New("entity not found")

// ValidationError wraps field-specific validation errors on service inputs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
