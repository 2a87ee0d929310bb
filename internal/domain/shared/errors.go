package shared

import (
	"errors"
	"strings"
)

// Error codes shared across the domain. The HTTP layer maps each code to a
// response code and status.
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeAlreadySubmitted   = "ALREADY_SUBMITTED"
	CodeIntegrityViolation = "INTEGRITY_VIOLATION"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidState       = "INVALID_STATE"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code, so that
// errors.Is(err, ErrNotFound) holds for any not-found error regardless of message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetail returns a copy of the error carrying an extra detail entry
func (e *DomainError) WithDetail(key string, value any) *DomainError {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &DomainError{Code: e.Code, Message: e.Message, Details: details}
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError reports bad user input
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidationFailed, message)
}

// NewIntegrityError reports a referenced entity that vanished between read and write.
// Callers are expected to restart the flow.
func NewIntegrityError(message string) *DomainError {
	return NewDomainError(CodeIntegrityViolation, message).WithDetail("restart", true)
}

// NewNotFoundError reports an unknown id for the named resource
func NewNotFoundError(resource string) *DomainError {
	return NewDomainError(CodeNotFound, resource+" not found")
}

// Common domain errors
var (
	ErrNotFound         = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists    = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrAlreadySubmitted = NewDomainError(CodeAlreadySubmitted, "Feedback has already been submitted for this survey")
	ErrInvalidInput     = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrUnauthorized     = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
	ErrForbidden        = NewDomainError(CodeForbidden, "Access to this resource is forbidden")
	ErrInvalidState     = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
	ErrIntegrity        = NewDomainError(CodeIntegrityViolation, "Referenced data changed, please restart")
)

// IsValidationError reports whether err is bad user input.
// Every INVALID_* code raised by entity constructors counts as validation.
func IsValidationError(err error) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	switch de.Code {
	case CodeValidationFailed, CodeAlreadyExists, CodeAlreadySubmitted:
		return true
	}
	return strings.HasPrefix(de.Code, "INVALID_") && de.Code != CodeInvalidState
}

// IsIntegrityError reports whether err is a live re-validation failure
func IsIntegrityError(err error) bool {
	return errors.Is(err, ErrIntegrity)
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
