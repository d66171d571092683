package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/auth"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/access"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// AuthMiddleware rejects the request unless it carries a valid bearer token.
func AuthMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, tokens, true) {
			return
		}
		c.Next()
	}
}

// OptionalAuth lets anonymous requests through but still rejects a token that
// is present and invalid.
func OptionalAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, tokens, false) {
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens *auth.TokenIssuer, required bool) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if !required {
			return true
		}
		abortUnauthorized(c, "missing_authorization_header", "Missing Authorization header.")
		return false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		abortUnauthorized(c, "invalid_authorization_header", "Authorization header must be Bearer <token>.")
		return false
	}

	id, err := tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		abortUnauthorized(c, "invalid_token", "Token is invalid or expired.")
		return false
	}

	c.Set(ContextUserID, id.UserID)
	c.Set(ContextUserRole, id.Rol)
	return true
}

func abortUnauthorized(c *gin.Context, code, message string) {
	httperr.Unauthorized(c, code, message)
	c.Abort()
}

// Subject returns the authenticated caller, if any.
func Subject(c *gin.Context) (access.Subject, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return access.Subject{}, false
	}
	userID, ok := v.(uint)
	if !ok {
		return access.Subject{}, false
	}
	return access.Subject{
		UserID: userID,
		Role:   access.Role(c.GetString(ContextUserRole)),
	}, true
}
