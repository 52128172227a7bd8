package billing

import (
	"errors"
	"fmt"
)

// Common billing errors
var (
	// ErrNilItem is returned when a nil item is appended to an invoice.
	ErrNilItem = errors.New("cannot add nil item to invoice")

	// ErrNilParty is returned when an invoice is constructed without a
	// provider or client.
	ErrNilParty = errors.New("invoice requires both a provider and a client")

	// ErrNilCreator is returned when an invoice is constructed without a creator.
	ErrNilCreator = errors.New("invoice requires a creator")
)

// ValidationError represents errors in invoice input validation.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
