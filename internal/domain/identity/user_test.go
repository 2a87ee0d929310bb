package identity

import (
	"testing"

	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	bcryptCost = bcrypt.MinCost
}

func TestNewUser(t *testing.T) {
	t.Run("creates student with hashed password", func(t *testing.T) {
		user, err := NewUser("Sam Student", "  Sam@Example.com ", "Password123", RoleStudent)
		require.NoError(t, err)

		assert.Equal(t, "sam@example.com", user.Email)
		assert.NotEqual(t, "Password123", user.PasswordHash)
		assert.True(t, user.VerifyPassword("Password123"))
		assert.False(t, user.VerifyPassword("wrong-pass1"))
		assert.True(t, user.IsStudent())

		events := user.GetDomainEvents()
		require.Len(t, events, 1)
		_, ok := events[0].(*UserRegisteredEvent)
		assert.True(t, ok)
	})

	t.Run("fails with unknown role", func(t *testing.T) {
		_, err := NewUser("Sam", "sam@example.com", "Password123", Role("teacher"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "admin or student")
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewUser("Sam", "not-an-email", "Password123", RoleAdmin)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email")
	})

	t.Run("fails with weak password", func(t *testing.T) {
		_, err := NewUser("Sam", "sam@example.com", "password", RoleAdmin)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "one letter and one number")
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewUser("Sam", "sam@example.com", "Pass1", RoleAdmin)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})
}

func TestUser_SetStudentProfile(t *testing.T) {
	student, err := NewUser("Sam", "sam@example.com", "Password123", RoleStudent)
	require.NoError(t, err)

	year := 2
	require.NoError(t, student.SetStudentProfile("21CS001", "CSE", &year))
	assert.Equal(t, "21CS001", student.RollNumber)
	assert.Equal(t, "CSE", student.Department)
	assert.Equal(t, 2, *student.Year)

	bad := 4
	err = student.SetStudentProfile("21CS001", "CSE", &bad)
	require.Error(t, err)
	assert.True(t, shared.IsValidationError(err))

	require.NoError(t, student.SetStudentProfile("21CS001", "CSE", nil))
	assert.Nil(t, student.Year)

	admin, err := NewUser("Ada", "ada@example.com", "Password123", RoleAdmin)
	require.NoError(t, err)
	err = admin.SetStudentProfile("x", "CSE", nil)
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}
