package middleware

import (
	"errors"
	"strings"

	"github.com/facultyfeedback/backend/internal/infrastructure/auth"
	"github.com/facultyfeedback/backend/internal/infrastructure/logger"
	"github.com/facultyfeedback/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// gin context keys set once a token is accepted
const (
	ClaimsKey = "auth_claims"
	UserIDKey = "user_id"
	RoleKey   = "user_role"
)

const bearerScheme = "Bearer "

// TokenValidator checks an access token. *auth.JWTService implements it.
type TokenValidator interface {
	ValidateAccessToken(token string) (*auth.Claims, error)
}

// AuthOption configures Authenticate and Identify
type AuthOption func(*authOptions)

type authOptions struct {
	revoked auth.RevocationList
}

// WithRevocations refuses access tokens whose id was revoked by a logout
func WithRevocations(list auth.RevocationList) AuthOption {
	return func(o *authOptions) { o.revoked = list }
}

func buildAuthOptions(opts []AuthOption) authOptions {
	var o authOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Authenticate requires a valid access token in the Authorization header.
// Admin-only and student-only route groups run it before RequireRole.
func Authenticate(tokens TokenValidator, log *zap.Logger, opts ...AuthOption) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	o := buildAuthOptions(opts)
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortWithError(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}
		claims, err := tokens.ValidateAccessToken(token)
		if err != nil {
			rejectToken(c, log, err)
			return
		}
		revoked, err := o.isRevoked(c, claims)
		if err != nil {
			log.Error("Revocation check failed", zap.Error(err))
			abortWithError(c, dto.ErrCodeServiceUnavailable, "Unable to verify token")
			return
		}
		if revoked {
			log.Debug("Revoked access token", zap.String("user_id", claims.UserID))
			abortWithError(c, dto.ErrCodeTokenInvalid, "Token has been revoked")
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// Identify attaches the caller's claims when a valid token is sent and
// otherwise lets the request through anonymously.
func Identify(tokens TokenValidator, opts ...AuthOption) gin.HandlerFunc {
	o := buildAuthOptions(opts)
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := tokens.ValidateAccessToken(token); err == nil {
				if revoked, err := o.isRevoked(c, claims); err == nil && !revoked {
					setClaims(c, claims)
				}
			}
		}
		c.Next()
	}
}

func (o authOptions) isRevoked(c *gin.Context, claims *auth.Claims) (bool, error) {
	if o.revoked == nil || claims.ID == "" {
		return false, nil
	}
	return o.revoked.IsRevoked(c.Request.Context(), claims.ID)
}

// RequireRole answers 403 unless the authenticated caller has one of roles,
// and 401 when nobody is authenticated.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		switch {
		case claims == nil:
			abortWithError(c, dto.ErrCodeUnauthorized, "Authentication required")
		case !claims.HasRole(roles...):
			abortWithError(c, dto.ErrCodeForbidden, "You do not have access to this resource")
		default:
			c.Next()
		}
	}
}

// CurrentClaims returns the claims of the authenticated caller, or nil
func CurrentClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

func CurrentUserID(c *gin.Context) string { return c.GetString(UserIDKey) }
func CurrentRole(c *gin.Context) string   { return c.GetString(RoleKey) }

func bearerToken(c *gin.Context) (string, bool) {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), bearerScheme)
	token = strings.TrimSpace(token)
	return token, found && token != ""
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(ClaimsKey, claims)
	c.Set(UserIDKey, claims.UserID)
	c.Set(RoleKey, claims.Role)
	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
}

// rejectToken answers 401 for a token that was sent but refused
func rejectToken(c *gin.Context, log *zap.Logger, err error) {
	log.Debug("Access token rejected", zap.Error(err), zap.String("path", c.FullPath()))
	if errors.Is(err, auth.ErrExpiredToken) {
		abortWithError(c, dto.ErrCodeTokenExpired, "Token has expired")
		return
	}
	abortWithError(c, dto.ErrCodeTokenInvalid, "Invalid token")
}
