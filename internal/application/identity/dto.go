package identity

import (
	"time"

	"github.com/facultyfeedback/backend/internal/domain/identity"
	"github.com/facultyfeedback/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// RegisterInput is a sign-up. Year only applies to students.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Role       identity.Role
	RollNumber string
	Department string
	Year       *int
	// Actor is the authenticated caller, nil for self-registration
	Actor *Actor
}

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID uuid.UUID
	Role   identity.Role
}

type LoginInput struct {
	Email    string
	Password string
	IP       string // logged with the attempt
}

// Tokens is a freshly issued access/refresh pair
type Tokens struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

type LoginResult struct {
	Tokens
	User UserInfo
}

// UserInfo is the account profile shown to clients, without the hash
type UserInfo struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Role       identity.Role
	RollNumber string
	Department string
	Year       *int
	CreatedAt  time.Time
}

type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the caller's verified access claims and an optional
// refresh token to retire with them
type LogoutInput struct {
	Access       *auth.Claims
	RefreshToken string
}

type RefreshTokenResult struct {
	Tokens
}

func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		RollNumber: u.RollNumber,
		Department: u.Department,
		Year:       u.Year,
		CreatedAt:  u.CreatedAt,
	}
}
