package domain

import "errors"

// ErrNotFound signals that an entity id does not exist. Handlers surface it
// as 404 with no body.
var ErrNotFound = errors.New("not found")

// ValidationError carries the single human-readable message for the first
// structural rule an entity violated. Handlers surface it as 400 with
// {"error": message}.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
