package identity

import (
	"regexp"
	"strings"

	"github.com/facultyfeedback/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role separates administrators from survey respondents
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStudent
}

var bcryptCost = bcrypt.DefaultCost

var (
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	passwordHasLetter = regexp.MustCompile(`[a-zA-Z]`)
	passwordHasNumber = regexp.MustCompile(`[0-9]`)
)

// User is an administrator or a student.
// Students carry the profile used to fill feedback records.
type User struct {
	shared.BaseAggregateRoot
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	RollNumber   string
	Department   string
	Year         *int
}

// NewUser creates a user with a hashed password
func NewUser(name, email, password string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be admin or student")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		PasswordHash:      hash,
		Role:              role,
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user))

	return user, nil
}

// SetStudentProfile sets the roll number, department and optional year of a student
func (u *User) SetStudentProfile(rollNumber, department string, year *int) error {
	if u.Role != RoleStudent {
		return shared.NewDomainError(shared.CodeInvalidState, "Only students have a student profile")
	}
	rollNumber = strings.TrimSpace(rollNumber)
	department = strings.TrimSpace(department)
	if rollNumber == "" {
		return shared.NewDomainError("INVALID_ROLL_NUMBER", "Roll number cannot be empty")
	}
	if department == "" {
		return shared.NewDomainError("INVALID_DEPARTMENT", "Department cannot be empty")
	}
	if year != nil && (*year < 1 || *year > 3) {
		return shared.NewDomainError("INVALID_YEAR", "Year must be 1, 2 or 3")
	}

	u.RollNumber = rollNumber
	u.Department = department
	u.Year = year
	u.Touch()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsAdmin reports whether the user administers surveys
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsStudent reports whether the user answers surveys
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	if !passwordHasLetter.MatchString(password) || !passwordHasNumber.MatchString(password) {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
