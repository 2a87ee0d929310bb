package organization

import (
	"strings"
	"testing"

	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDepartment(t *testing.T) {
	t.Run("creates department with valid inputs", func(t *testing.T) {
		dept, err := NewDepartment("CSE", "Computer Science and Engineering")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, dept.ID)
		assert.Equal(t, "CSE", dept.Name)
		assert.Equal(t, "Computer Science and Engineering", dept.FullName)
		assert.Empty(t, dept.Faculties)
		require.Len(t, dept.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeDepartmentCreated, dept.GetDomainEvents()[0].EventType())
	})

	t.Run("full name defaults to name", func(t *testing.T) {
		dept, err := NewDepartment("  ECE ", "   ")
		require.NoError(t, err)
		assert.Equal(t, "ECE", dept.Name)
		assert.Equal(t, "ECE", dept.FullName)
	})

	t.Run("allows hyphens digits and spaces", func(t *testing.T) {
		_, err := NewDepartment("AI-ML 2", "")
		require.NoError(t, err)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewDepartment("", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("fails with one character", func(t *testing.T) {
		_, err := NewDepartment("C", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 2 characters")
	})

	t.Run("fails with name longer than 50", func(t *testing.T) {
		_, err := NewDepartment(strings.Repeat("a", 51), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 50")
	})

	t.Run("fails with punctuation", func(t *testing.T) {
		_, err := NewDepartment("C&S", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "letters, numbers, spaces, and hyphens")
	})

	t.Run("fails with full name longer than 100", func(t *testing.T) {
		_, err := NewDepartment("CSE", strings.Repeat("x", 101))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Full name cannot exceed 100")
	})
}

func TestDepartment_Update(t *testing.T) {
	dept, err := NewDepartment("CSE", "")
	require.NoError(t, err)
	dept.ClearDomainEvents()

	require.NoError(t, dept.Update("CSE-A", "Computer Science A"))
	assert.Equal(t, "CSE-A", dept.Name)
	assert.Equal(t, "Computer Science A", dept.FullName)
	require.Len(t, dept.GetDomainEvents(), 1)
	assert.Equal(t, EventTypeDepartmentUpdated, dept.GetDomainEvents()[0].EventType())

	require.Error(t, dept.Update("x", ""))
	assert.Equal(t, "CSE-A", dept.Name)
}

func TestDepartment_AddFaculty(t *testing.T) {
	dept, err := NewDepartment("CSE", "")
	require.NoError(t, err)

	t.Run("adds faculty to roster", func(t *testing.T) {
		f, err := dept.AddFaculty("Dr. Ada O'Neil", "Algorithms")
		require.NoError(t, err)
		assert.Equal(t, dept.ID, f.DepartmentID)
		assert.Equal(t, "Algorithms", f.Subject)
		assert.True(t, dept.HasFaculty(f.ID))
		assert.Equal(t, 1, dept.FacultyCount())
	})

	t.Run("rejects case-insensitive duplicate", func(t *testing.T) {
		_, err := dept.AddFaculty("dr. ada o'neil", "")
		require.Error(t, err)
		assert.True(t, errorsIsCode(err, shared.CodeAlreadyExists))
		assert.Equal(t, 1, dept.FacultyCount())
	})

	t.Run("rejects digits in name", func(t *testing.T) {
		_, err := dept.AddFaculty("Agent 47", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "letters, spaces, dots, hyphens, and apostrophes")
	})

	t.Run("rejects name longer than 100", func(t *testing.T) {
		_, err := dept.AddFaculty(strings.Repeat("b", 101), "")
		require.Error(t, err)
	})
}

func TestDepartment_RemoveFaculty(t *testing.T) {
	dept, err := NewDepartment("CSE", "")
	require.NoError(t, err)
	a, err := dept.AddFaculty("Alice", "")
	require.NoError(t, err)
	aID := a.ID
	b, err := dept.AddFaculty("Bob", "")
	require.NoError(t, err)
	bID := b.ID

	require.NoError(t, dept.RemoveFaculty(aID))
	assert.False(t, dept.HasFaculty(aID))
	assert.Equal(t, []uuid.UUID{bID}, dept.FacultyIDs())

	err = dept.RemoveFaculty(aID)
	assert.True(t, shared.IsNotFound(err))
}

func errorsIsCode(err error, code string) bool {
	de, ok := err.(*shared.DomainError)
	return ok && de.Code == code
}
