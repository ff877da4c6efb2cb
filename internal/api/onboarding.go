package api

import (
	"context"  // Context for persistence
	"net/http" // HTTP status codes
	"time"     // Completion timestamp

	"sthira/internal/accounts"   // Account repository
	"sthira/internal/app"        // Session state machine
	"sthira/internal/dashboard"  // Public profiles
	"sthira/internal/domain"     // Roles
	"sthira/internal/middleware" // Session context
	"sthira/internal/session"    // Session store
	"sthira/internal/simulate"   // Post-onboarding metrics

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for wizard steps
type StepRequest struct {
	Fields map[string]string `json:"fields"` // Field id to entered value
}

// afterFunc reacts to the events of a successful transition. Returned keys
// are added to the response body.
type afterFunc func(ctx context.Context, events []app.Event) (gin.H, error)

// transition applies action to the session state, stores the new state, runs
// after on the emitted events and writes the response. The session is written
// first so a concurrent request on the same session loses with 409 before any
// account change; if after fails the previous state is put back.
func transition(c *gin.Context, sessions session.Store, action app.Action, after afterFunc) {
	ctx := c.Request.Context()
	id := middleware.SessionID(c)
	prev := middleware.State(c)
	next, events, err := app.Update(prev, action)
	if err != nil {
		respondError(c, err) // State unchanged
		return
	}
	if err := sessions.Swap(ctx, id, prev, next); err != nil {
		respondError(c, err)
		return
	}
	body := gin.H{}
	if after != nil {
		extra, err := after(ctx, events)
		if err != nil {
			// Rollback must outlive a cancelled request
			if rbErr := sessions.Swap(context.WithoutCancel(ctx), id, next, prev); rbErr != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": prev.AccountID, // Session owner
					"view":       next.View,      // State left in the session
					"error":      rbErr.Error(),  // Rollback error
				}).Error("Failed to roll back session after account update error")
			}
			respondError(c, err)
			return
		}
		for k, v := range extra {
			body[k] = v
		}
	}
	body["state"] = app.Render(next)      // New state
	body["events"] = renderEvents(events) // Transition events
	c.JSON(http.StatusOK, body)
}

// bindStep reads the optional {fields} body
func bindStep(c *gin.Context) (StepRequest, bool) {
	var req StepRequest
	if c.Request.ContentLength == 0 {
		return req, true // No body, fields already in the draft
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return req, false
	}
	return req, true
}

// attachOnboarding stores a completed snapshot on the account and replaces its
// streak and accuracy with simulated starting values
func attachOnboarding(repo *accounts.Repository, metrics simulate.Metrics) afterFunc {
	return func(ctx context.Context, events []app.Event) (gin.H, error) {
		for _, e := range events {
			done, ok := e.(app.OnboardingCompleted)
			if !ok {
				continue
			}
			data := done.Data
			acc, err := repo.Update(ctx, domain.RoleUser, done.AccountID, func(a *domain.Account) {
				a.OnboardingData = &data
				a.Streak, a.AverageAccuracy = metrics.PostOnboarding(data.YogaExperience)
				a.MetricsSimulated = true
			})
			if err != nil {
				return nil, err
			}
			logrus.WithFields(logrus.Fields{
				"account_id":  acc.ID,              // Onboarded account
				"bmi":         data.BMI,            // BMI snapshot
				"bmiCategory": data.BMICategory,    // BMI category
				"experience":  data.YogaExperience, // Yoga experience
			}).Info("Onboarding completed")
			return gin.H{
				"account": dashboard.PublicProfile(acc),                                                     // Account with its snapshot
				"message": "Profile completed successfully! Your yoga journey is now personalized for you.", // Completion notice
			}, nil
		}
		return nil, nil
	}
}

// OnboardingNextHandler validates the current step and moves forward,
// completing onboarding when called on the last step
func OnboardingNextHandler(repo *accounts.Repository, sessions session.Store, metrics simulate.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindStep(c)
		if !ok {
			return
		}
		transition(c, sessions, app.Advance{Fields: req.Fields, At: time.Now()}, attachOnboarding(repo, metrics))
	}
}

// OnboardingPreviousHandler moves the wizard one step back
func OnboardingPreviousHandler(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		transition(c, sessions, app.Retreat{}, nil)
	}
}

// OnboardingCompleteHandler submits the final step
func OnboardingCompleteHandler(repo *accounts.Repository, sessions session.Store, metrics simulate.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindStep(c)
		if !ok {
			return
		}
		transition(c, sessions, app.Complete{Fields: req.Fields, At: time.Now()}, attachOnboarding(repo, metrics))
	}
}
