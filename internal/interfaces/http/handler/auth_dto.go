package handler

import (
	"time"

	"github.com/facultyfeedback/backend/internal/application/identity"
	"github.com/google/uuid"
)

// RegisterRequest represents the request body for account registration.
// Role defaults to student; admin accounts need an admin caller once the
// first admin exists.
type RegisterRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100" example:"Asha Rao"`
	Email      string `json:"email" binding:"required,email,max=200" example:"asha@college.edu"`
	Password   string `json:"password" binding:"required,min=8,max=72" example:"s3cretpass"`
	Role       string `json:"role" binding:"omitempty,oneof=admin student" example:"student"`
	RollNumber string `json:"rollNumber" binding:"max=50" example:"CSE-042"`
	Department string `json:"department" binding:"max=50" example:"CSE"`
	Year       *int   `json:"year" binding:"omitempty,min=1,max=3" example:"2"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"asha@college.edu"`
	Password string `json:"password" binding:"required" example:"s3cretpass"`
}

// RefreshTokenRequest represents the request body for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest optionally names the refresh token to revoke with the
// access token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// MessageResponse acknowledges an operation with nothing else to return
type MessageResponse struct {
	Message string `json:"message" example:"Logged out"`
}

// TokenResponse represents the token data in auth responses
type TokenResponse struct {
	AccessToken           string    `json:"accessToken"`
	RefreshToken          string    `json:"refreshToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
	TokenType             string    `json:"tokenType" example:"Bearer"`
}

// UserResponse represents an account in API responses
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role" example:"student"`
	RollNumber string    `json:"rollNumber,omitempty"`
	Department string    `json:"department,omitempty"`
	Year       *int      `json:"year,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LoginResponse represents the response body for successful login
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

func toUserResponse(u identity.UserInfo) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		RollNumber: u.RollNumber,
		Department: u.Department,
		Year:       u.Year,
		CreatedAt:  u.CreatedAt,
	}
}

func toTokenResponse(t identity.Tokens) TokenResponse {
	return TokenResponse{
		AccessToken:           t.AccessToken,
		RefreshToken:          t.RefreshToken,
		AccessTokenExpiresAt:  t.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: t.RefreshTokenExpiresAt,
		TokenType:             t.TokenType,
	}
}
