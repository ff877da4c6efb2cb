package middleware

import (
	"net/http" // HTTP status codes

	"sthira/internal/domain" // Roles

	"github.com/gin-gonic/gin" // Gin web framework
)

// RoleMiddleware lets through only sessions signed in with role
func RoleMiddleware(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := State(c) // Session state loaded by SessionAuthMiddleware
		// Check if a session exists
		if !state.SignedIn() {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Check the session role
		if state.Role != role {
			// If it differs, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This feature is available to " + string(role) + " accounts only"})
			return
		}
		c.Next()
	}
}
