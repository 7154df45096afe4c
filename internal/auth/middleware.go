package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/labelforge/annotate-backend/internal/apperr"
)

// RequireAuth validates the bearer token and stores the caller's user id in
// the context. Refresh tokens are not accepted on protected routes.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			apperr.Abort(c, apperr.Unauthorized("Authorization token is missing."))
			return
		}

		userID, tokenType, err := ParseToken(token, secret)
		if err != nil || tokenType != TokenTypeAccess {
			apperr.Abort(c, apperr.Unauthorized("Authorization token is invalid or expired."))
			return
		}

		c.Set(CtxUserID, userID)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
