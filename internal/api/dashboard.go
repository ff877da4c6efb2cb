package api

import (
	"net/http" // HTTP status codes

	"sthira/internal/app"        // Session state machine
	"sthira/internal/dashboard"  // Dashboard presenter
	"sthira/internal/domain"     // Roles
	"sthira/internal/middleware" // Session context
	"sthira/internal/session"    // Session store

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for section switching
type SectionRequest struct {
	Section string `json:"section" binding:"required"` // Section name
}

// DashboardHandler returns the overview for the session's role
func DashboardHandler(p *dashboard.Presenter) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := middleware.State(c)
		if state.View != app.ViewUserDashboard && state.View != app.ViewTrainerDashboard {
			respondError(c, app.ErrNotOnDashboard) // Onboarding still in progress
			return
		}
		if state.Role == domain.RoleTrainer {
			profile, stats, err := p.Trainer(state.AccountID)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"state": app.Render(state), "profile": profile, "stats": stats})
			return
		}
		profile, stats, err := p.User(state.AccountID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": app.Render(state), "profile": profile, "stats": stats})
	}
}

// SectionHandler activates one dashboard section
func SectionHandler(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SectionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		transition(c, sessions, app.ShowSection{Name: req.Section}, nil)
	}
}
