package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/facultyfeedback/backend/internal/domain/identity"
	"github.com/facultyfeedback/backend/internal/domain/organization"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService owns accounts and the tokens issued for them
type AuthService struct {
	userRepo       identity.UserRepository
	departmentRepo organization.DepartmentRepository
	jwtService     *auth.JWTService
	eventPublisher shared.EventPublisher
	revocations    auth.RevocationList
	logger         *zap.Logger
}

// AuthServiceOption configures an AuthService
type AuthServiceOption func(*AuthService)

// WithRevocationList shares the list the request middleware checks.
// Without it revocations are only known to this process.
func WithRevocationList(list auth.RevocationList) AuthServiceOption {
	return func(s *AuthService) { s.revocations = list }
}

func NewAuthService(
	userRepo identity.UserRepository,
	departmentRepo organization.DepartmentRepository,
	jwtService *auth.JWTService,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
	opts ...AuthServiceOption,
) *AuthService {
	s := &AuthService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		jwtService:     jwtService,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.revocations == nil {
		s.revocations = auth.NewMemoryRevocationList()
	}
	return s
}

// Register creates an account. Students may register themselves; admin
// accounts can only be created by another admin, except the very first one.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*UserInfo, error) {
	if input.Role == identity.RoleAdmin {
		if err := s.authorizeAdminRegistration(ctx, input.Actor); err != nil {
			return nil, err
		}
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "An account with this email already exists")
	}

	user, err := identity.NewUser(input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		return nil, err
	}

	if user.IsStudent() {
		dept, err := s.departmentRepo.FindByName(ctx, input.Department)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewValidationError("Department not found")
			}
			return nil, err
		}
		if err := user.SetStudentProfile(input.RollNumber, dept.Name, input.Year); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := shared.PublishAndClear(ctx, s.eventPublisher, user); err != nil {
		s.logger.Warn("Failed to publish user events", zap.Error(err))
	}

	s.logger.Info("User registered", zap.Stringer("user_id", user.ID), zap.String("role", string(user.Role)))

	info := ToUserInfo(user)
	return &info, nil
}

func (s *AuthService) authorizeAdminRegistration(ctx context.Context, actor *Actor) error {
	if actor != nil && actor.Role == identity.RoleAdmin {
		return nil
	}
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].IsAdmin() {
			return shared.NewDomainError(shared.CodeForbidden, "Only administrators can create admin accounts")
		}
	}
	return nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := normalizeEmail(input.Email)
	user, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		s.logger.Warn("Login for unknown email", zap.String("email", email), zap.String("ip", input.IP))
		return nil, invalidCredentials()
	case err != nil:
		return nil, err
	case !user.VerifyPassword(input.Password):
		s.logger.Warn("Login with wrong password", zap.Stringer("user_id", user.ID), zap.String("ip", input.IP))
		return nil, invalidCredentials()
	}

	tokens, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", zap.Stringer("user_id", user.ID), zap.String("role", string(user.Role)))
	return &LoginResult{Tokens: tokens, User: ToUserInfo(user)}, nil
}

// RefreshToken issues a new token pair from a valid refresh token. The
// presented refresh token is revoked, so each one can be used once.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Debug("Refresh token refused", zap.Error(err))
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
		}
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		s.logger.Warn("Revoked refresh token presented", zap.String("user_id", claims.UserID))
		return nil, shared.NewDomainError("TOKEN_INVALID", "Refresh token has been revoked")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	// the account may have been removed since the token was issued
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeUnauthorized, "User no longer exists")
		}
		return nil, err
	}

	if err := s.revoke(ctx, claims); err != nil {
		return nil, err
	}
	tokens, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Token refreshed", zap.Stringer("user_id", userID))
	return &RefreshTokenResult{Tokens: tokens}, nil
}

// Logout revokes the caller's access token and, when one is sent, the
// refresh token belonging to the same user.
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.Access == nil {
		return shared.NewDomainError(shared.CodeUnauthorized, "Authentication required")
	}
	if err := s.revoke(ctx, input.Access); err != nil {
		return err
	}

	if input.RefreshToken != "" {
		refresh, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			// nothing left to revoke
		case err != nil || refresh.UserID != input.Access.UserID:
			return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
		default:
			if err := s.revoke(ctx, refresh); err != nil {
				return err
			}
		}
	}

	s.logger.Info("User logged out", zap.String("user_id", input.Access.UserID))
	return nil
}

func (s *AuthService) revoke(ctx context.Context, claims *auth.Claims) error {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	if err := s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		s.logger.Error("Failed to revoke token", zap.String("user_id", claims.UserID), zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
	}
	return nil
}

// issue signs a new pair carrying the user's current role
func (s *AuthService) issue(user *identity.User) (Tokens, error) {
	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	if err != nil {
		s.logger.Error("Failed to sign token pair", zap.Stringer("user_id", user.ID), zap.Error(err))
		return Tokens{}, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}
	return Tokens{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}, nil
}

// Me returns the profile of the authenticated user
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("User")
		}
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// ListUsers returns every account
func (s *AuthService) ListUsers(ctx context.Context) ([]UserInfo, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserInfo, len(users))
	for i := range users {
		out[i] = ToUserInfo(&users[i])
	}
	return out, nil
}

func invalidCredentials() error {
	return shared.NewDomainError(shared.CodeUnauthorized, "Invalid email or password")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
