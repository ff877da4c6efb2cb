package api

import (
	"net/http" // HTTP status codes

	"sthira/internal/app"        // Session state rendering
	"sthira/internal/auth"       // Authentication service
	"sthira/internal/dashboard"  // Public profiles
	"sthira/internal/domain"     // Roles
	"sthira/internal/middleware" // Session context

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email"`    // Login key within the role
	Password string `json:"password"` // Plaintext password, compared against the bcrypt hash
}

// Response struct for signup and login
type AuthResponse struct {
	Token   string            `json:"token"`   // JWT token
	Account dashboard.Profile `json:"account"` // Signed-in account
	State   app.Snapshot      `json:"state"`   // Session state after sign in
	Events  []eventJSON       `json:"events"`  // Transition events
}

func newAuthResponse(res auth.Result) AuthResponse {
	return AuthResponse{
		Token:   res.Token,
		Account: dashboard.PublicProfile(res.Account),
		State:   app.Render(res.State),
		Events:  renderEvents(res.Events),
	}
}

// roleParam parses the :role path segment, writing a 404 if it is unknown
func roleParam(c *gin.Context) (domain.Role, bool) {
	role, err := domain.ParseRole(c.Param("role"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown account type"})
		return "", false
	}
	return role, true
}

// SignupHandler creates an account in the role's list and opens a session
func SignupHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := roleParam(c) // user or trainer
		if !ok {
			return
		}
		var req auth.SignupInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		res, err := svc.Signup(c.Request.Context(), role, req)
		if err != nil {
			respondError(c, err) // Validation, duplicate email or storage failure
			return
		}
		c.JSON(http.StatusCreated, newAuthResponse(res))
	}
}

// LoginHandler authenticates an account and returns a session token
func LoginHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := roleParam(c) // user or trainer
		if !ok {
			return
		}
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		res, err := svc.Login(c.Request.Context(), role, req.Email, req.Password)
		if err != nil {
			respondError(c, err) // Same message for unknown email and wrong password
			return
		}
		c.JSON(http.StatusOK, newAuthResponse(res))
	}
}

// LogoutHandler ends the current session
func LogoutHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		next, events, err := svc.Logout(c.Request.Context(), middleware.SessionID(c), middleware.State(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": app.Render(next), "events": renderEvents(events)})
	}
}

// SessionHandler returns the current state with navigation and progress
func SessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"state": app.Render(middleware.State(c))})
	}
}
