package models

import "errors"

// ErrorType represents different categories of errors in the system
type ErrorType string

const (
	ErrTypeValidation ErrorType = "validation"
	ErrTypeNotFound   ErrorType = "not_found"
	ErrTypeSystem     ErrorType = "system"
)

// SelectError represents a structured error with type and context
type SelectError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *SelectError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Unwrap returns the underlying cause of the error
func (e *SelectError) Unwrap() error {
	return e.Cause
}

// NewSelectError creates a new SelectError with the given type and message
func NewSelectError(errType ErrorType, message string) *SelectError {
	return &SelectError{
		Type:    errType,
		Message: message,
	}
}

// NewSelectErrorWithCause creates a new SelectError with an underlying cause
func NewSelectErrorWithCause(errType ErrorType, message string, cause error) *SelectError {
	return &SelectError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// WithDetails returns a copy of the error carrying extra details
func (e *SelectError) WithDetails(details string) *SelectError {
	c := *e
	c.Details = details
	return &c
}

// IsType reports whether err is a SelectError of the given type
func IsType(err error, errType ErrorType) bool {
	var selErr *SelectError
	return errors.As(err, &selErr) && selErr.Type == errType
}
