package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	t.Run("matches by code", func(t *testing.T) {
		err := NewNotFoundError("Survey")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, "Survey not found", err.Error())
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("load: %w", NewNotFoundError("Department"))
		assert.True(t, IsNotFound(err))
	})

	t.Run("different codes do not match", func(t *testing.T) {
		assert.False(t, errors.Is(ErrAlreadyExists, ErrNotFound))
	})
}

func TestDomainError_WithDetail(t *testing.T) {
	base := NewValidationError("bad")
	withDetail := base.WithDetail("field", "name")

	assert.Nil(t, base.Details)
	assert.Equal(t, "name", withDetail.Details["field"])
	assert.Equal(t, base.Code, withDetail.Code)
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		validation bool
		integrity  bool
		notFound   bool
	}{
		{"validation failed", NewValidationError("x"), true, false, false},
		{"invalid field", NewDomainError("INVALID_DEPARTMENT_NAME", "x"), true, false, false},
		{"already submitted", ErrAlreadySubmitted, true, false, false},
		{"invalid state is not validation", ErrInvalidState, false, false, false},
		{"integrity", NewIntegrityError("survey deleted"), false, true, false},
		{"not found", NewNotFoundError("Question"), false, false, true},
		{"plain error", errors.New("boom"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, IsValidationError(tt.err))
			assert.Equal(t, tt.integrity, IsIntegrityError(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
		})
	}
}

func TestNewIntegrityError_AsksForRestart(t *testing.T) {
	err := NewIntegrityError("Faculty no longer exists")
	assert.Equal(t, true, err.Details["restart"])
}

func TestFoldEqual(t *testing.T) {
	assert.True(t, FoldEqual("CSE", " cse "))
	assert.True(t, FoldEqual("Computer Science", "COMPUTER science"))
	assert.False(t, FoldEqual("CSE", "ECE"))
}

func TestParseID(t *testing.T) {
	id := GenerateID()
	parsed, err := ParseID("survey", id)
	assert.NoError(t, err)
	assert.Equal(t, id, parsed.String())

	_, err = ParseID("survey", "not-a-uuid")
	assert.True(t, IsValidationError(err))
}
