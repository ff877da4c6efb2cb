package api

import (
	"net/http" // HTTP status codes

	"sthira/internal/accounts"   // Account repository
	"sthira/internal/domain"     // Roles
	"sthira/internal/middleware" // Session context
	"sthira/internal/simulate"   // Simulated services

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for health recommendations
type HealthRequest struct {
	Concern string `json:"concern"` // Free-text health concern
}

// Response struct for pose analysis
type PoseResponse struct {
	Analysis        simulate.PoseAnalysis `json:"analysis"`        // Detected pose and score
	AverageAccuracy int                   `json:"averageAccuracy"` // Updated running accuracy
}

// HealthHandler returns simulated recommendations for a health concern
func HealthHandler(delays simulate.Delays) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HealthRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		advice, err := simulate.Run(c.Request.Context(), delays.Health, func() (simulate.HealthAdvice, error) {
			return simulate.Advise(req.Concern)
		})
		if err != nil {
			respondError(c, err) // Empty concern or client gone
			return
		}
		c.JSON(http.StatusOK, advice)
	}
}

// PoseHandler runs a simulated pose analysis and folds the score into the
// user's average accuracy. Nothing is stored if the request ends early.
func PoseHandler(repo *accounts.Repository, metrics simulate.Metrics, delays simulate.Delays) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		state := middleware.State(c)
		resp, err := simulate.Run(ctx, delays.Pose, func() (PoseResponse, error) {
			analysis := simulate.AnalyzePose(metrics)
			acc, err := repo.Update(ctx, domain.RoleUser, state.AccountID, func(a *domain.Account) {
				a.AverageAccuracy = simulate.BlendAccuracy(a.AverageAccuracy, analysis.Accuracy)
			})
			if err != nil {
				return PoseResponse{}, err
			}
			return PoseResponse{Analysis: analysis, AverageAccuracy: acc.AverageAccuracy}, nil
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// DietHandler returns a simulated diet plan
func DietHandler(delays simulate.Delays) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req simulate.DietRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, simulate.ErrDietFieldsMissing) // Goal, type and activity level are required
			return
		}
		plan, err := simulate.Run(c.Request.Context(), delays.Diet, func() (simulate.DietPlan, error) {
			return simulate.PlanDiet(req)
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}
