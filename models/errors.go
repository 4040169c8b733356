package models

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every ValidationError
var ErrValidation = errors.New("validation failed")

// MsgRequiredFields is returned when any required request field is missing
const MsgRequiredFields = "All required fields must be provided"

// ValidationError carries a message that is safe to show to the caller
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func Invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
