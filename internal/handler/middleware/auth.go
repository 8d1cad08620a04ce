package middleware

import (
	"log/slog"
	"strings"

	"neighbiz/internal/domain/auth"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/handler/httperr"
	"neighbiz/internal/pkg/cookie"
	"neighbiz/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPrincipalKey = "principal"
	ctxClaimsKey    = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Respond(c, auth.ErrInvalidToken)
			return
		}

		principal, err := m.tokenValidator.Authenticate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Respond(c, err)
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// RequireKind must run after RequireAuth.
func (m *AuthMiddleware) RequireKind(kind user.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.Respond(c, auth.ErrInvalidToken)
			return
		}
		if principal.Kind() != kind {
			if kind == user.KindOwner {
				httperr.Respond(c, user.ErrNotOwner)
			} else {
				httperr.Respond(c, user.ErrNotConsumer)
			}
			return
		}
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		principal, err := m.tokenValidator.Authenticate(token)
		if err != nil {
			c.Next()
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setPrincipal(c *gin.Context, principal user.Principal) {
	c.Set(ctxPrincipalKey, principal)
	c.Set(ctxClaimsKey, map[string]any{
		"principal_id": principal.ID().String(),
		"kind":         principal.Kind().String(),
	})
}

func GetPrincipal(c *gin.Context) (user.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return user.Principal{}, false
	}

	principal, ok := v.(user.Principal)
	return principal, ok
}
