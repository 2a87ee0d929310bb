package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryCodeHasAStatus(t *testing.T) {
	for _, code := range []string{
		ErrCodeUnknown, ErrCodeInternal, ErrCodeValidation, ErrCodeValidationRequest,
		ErrCodeBadRequest, ErrCodeInvalidInput, ErrCodeRequestTooLarge, ErrCodeUnauthorized,
		ErrCodeForbidden, ErrCodeTokenExpired, ErrCodeTokenInvalid, ErrCodeNotFound,
		ErrCodeAlreadyExists, ErrCodeAlreadySubmitted, ErrCodeInvalidState, ErrCodeIntegrity,
		ErrCodeRateLimited, ErrCodeServiceUnavailable,
	} {
		assert.Contains(t, statusByCode, code)
	}
}

func TestGetHTTPStatus(t *testing.T) {
	for code, want := range map[string]int{
		ErrCodeValidation:        http.StatusUnprocessableEntity,
		ErrCodeInvalidState:      http.StatusUnprocessableEntity,
		ErrCodeValidationRequest: http.StatusBadRequest,
		ErrCodeTokenExpired:      http.StatusUnauthorized,
		ErrCodeForbidden:         http.StatusForbidden,
		ErrCodeIntegrity:         http.StatusConflict,
		ErrCodeAlreadySubmitted:  http.StatusConflict,
		ErrCodeRequestTooLarge:   http.StatusRequestEntityTooLarge,
		ErrCodeRateLimited:       http.StatusTooManyRequests,
		"ERR_NOT_A_CODE":         http.StatusInternalServerError,
	} {
		assert.Equal(t, want, GetHTTPStatus(code), code)
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	for in, want := range map[string]string{
		"NOT_FOUND":           ErrCodeNotFound,
		"ALREADY_SUBMITTED":   ErrCodeAlreadySubmitted,
		"INTEGRITY_VIOLATION": ErrCodeIntegrity,
		"INVALID_STATE":       ErrCodeInvalidState,
		"INVALID_INPUT":       ErrCodeInvalidInput,
		"INVALID_DEPARTMENT":  ErrCodeValidation,
		"INVALID_YEAR":        ErrCodeValidation,
		"FORBIDDEN":           ErrCodeForbidden,
		ErrCodeRateLimited:    ErrCodeRateLimited,
		"SOMETHING_ELSE":      ErrCodeUnknown,
	} {
		assert.Equal(t, want, NormalizeErrorCode(in), in)
	}
}

func TestNewValidationErrorResponse(t *testing.T) {
	resp := NewValidationErrorResponse("Request validation failed", "req-1", []ValidationDetail{
		{Field: "department", Message: "This field is required"},
	})

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   ErrorInfo       `json:"error"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.False(t, decoded.Success)
	assert.Nil(t, decoded.Data)
	assert.Equal(t, ErrCodeValidationRequest, decoded.Error.Code)
	assert.Equal(t, "req-1", decoded.Error.RequestID)
	assert.Len(t, decoded.Error.Fields, 1)
}
