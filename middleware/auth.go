package middleware

import (
	"net/http"
	"strings"

	"huduma/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxUserID = "userID"
	CtxName   = "userName"
	CtxEmail  = "userEmail"
	CtxRole   = "userRole"
)

// AuthMiddleware validates the bearer token and stamps the caller's
// identity into the request context. Authorization rules live with the
// handlers; this only establishes who is calling.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxRole, role)
		c.Set(CtxName, c.GetHeader("X-User-Name"))
		c.Set(CtxEmail, c.GetHeader("X-User-Email"))
		c.Next()
	}
}

// AdminGuard restricts a route group to operator/admin identities.
func AdminGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role != "admin" && role != "operator" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			return
		}
		c.Next()
	}
}
