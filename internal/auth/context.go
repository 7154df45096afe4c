package auth

import "github.com/gin-gonic/gin"

const CtxUserID = "user_id"

// UserID extracts the authenticated user's id from the Gin context.
// This is set by RequireAuth.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(CtxUserID)
}
