package dto

import (
	"net/http"
	"strings"
)

// Response error codes. Clients branch on these, never on messages.
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"

	// ErrCodeValidation is a domain rule rejecting otherwise well-formed
	// input; ErrCodeValidationRequest is a request that failed binding.
	ErrCodeValidation        = "ERR_VALIDATION"
	ErrCodeValidationRequest = "ERR_VALIDATION_REQUEST"
	ErrCodeBadRequest        = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput      = "ERR_INVALID_INPUT"
	ErrCodeRequestTooLarge   = "ERR_REQUEST_TOO_LARGE"

	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"

	ErrCodeNotFound         = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists    = "ERR_ALREADY_EXISTS"
	ErrCodeAlreadySubmitted = "ERR_ALREADY_SUBMITTED"
	ErrCodeInvalidState     = "ERR_INVALID_STATE"
	// ErrCodeIntegrity tells the client to restart the survey from scratch
	ErrCodeIntegrity = "ERR_INTEGRITY"

	ErrCodeRateLimited        = "ERR_RATE_LIMITED"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"
)

var statusByCode = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:        http.StatusUnprocessableEntity,
	ErrCodeValidationRequest: http.StatusBadRequest,
	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeInvalidInput:      http.StatusBadRequest,
	ErrCodeRequestTooLarge:   http.StatusRequestEntityTooLarge,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeAlreadyExists:    http.StatusConflict,
	ErrCodeAlreadySubmitted: http.StatusConflict,
	ErrCodeIntegrity:        http.StatusConflict,
	ErrCodeInvalidState:     http.StatusUnprocessableEntity,

	ErrCodeRateLimited:        http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus is the status sent with code; unknown codes are 500
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainCodes translates shared.DomainError codes that have a response
// code of their own
var domainCodes = map[string]string{
	"NOT_FOUND":           ErrCodeNotFound,
	"ALREADY_EXISTS":      ErrCodeAlreadyExists,
	"ALREADY_SUBMITTED":   ErrCodeAlreadySubmitted,
	"INTEGRITY_VIOLATION": ErrCodeIntegrity,
	"VALIDATION_FAILED":   ErrCodeValidation,
	"INVALID_INPUT":       ErrCodeInvalidInput,
	"INVALID_STATE":       ErrCodeInvalidState,
	"UNAUTHORIZED":        ErrCodeUnauthorized,
	"FORBIDDEN":           ErrCodeForbidden,
	"TOKEN_EXPIRED":       ErrCodeTokenExpired,
	"TOKEN_INVALID":       ErrCodeTokenInvalid,
	"INTERNAL_ERROR":      ErrCodeInternal,
}

// NormalizeErrorCode maps a domain code to its ERR_* form. Field codes
// such as INVALID_YEAR become ERR_VALIDATION.
func NormalizeErrorCode(code string) string {
	if mapped, ok := domainCodes[code]; ok {
		return mapped
	}
	switch {
	case strings.HasPrefix(code, "INVALID_"):
		return ErrCodeValidation
	case strings.HasPrefix(code, "ERR_"):
		return code
	}
	return ErrCodeUnknown
}
