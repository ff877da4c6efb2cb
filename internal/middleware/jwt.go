package middleware

import (
	"context"  // Cancellation errors
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"sthira/internal/app"     // Session state
	"sthira/internal/session" // Session store
	"sthira/internal/utils"   // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Context keys set by SessionAuthMiddleware
const (
	SessionIDKey = "sessionID"
	StateKey     = "state"
)

// SessionAuthMiddleware validates the bearer token and loads the session it names
func SessionAuthMiddleware(secret string, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		state, err := sessions.Get(c.Request.Context(), claims.SessionID) // Load the server-side session
		if errors.Is(err, session.ErrSessionNotFound) || (err == nil && state.AccountID != claims.AccountID) {
			// Logged out, expired, or issued for another account
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
			return
		} else if errors.Is(err, context.Canceled) {
			c.AbortWithStatus(499) // Client went away
			return
		} else if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to load session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		c.Set(SessionIDKey, claims.SessionID) // Store session id in context
		c.Set(StateKey, state)                // Store session state in context
		c.Next()                              // Proceed to the next handler
	}
}

// SessionID returns the id stored by SessionAuthMiddleware
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

// State returns the session state stored by SessionAuthMiddleware
func State(c *gin.Context) app.State {
	if v, ok := c.Get(StateKey); ok {
		if s, ok := v.(app.State); ok {
			return s
		}
	}
	return app.Landing()
}
