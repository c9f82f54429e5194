package domain

import "errors"

var ErrTaskNotFound = errors.New("task not found")

// ValidationError carries a top-level message plus one message per
// offending field, so the HTTP layer can surface them all together.
type ValidationError struct {
	Message string
	Details map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details map[string]string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}
