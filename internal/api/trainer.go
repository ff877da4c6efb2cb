package api

import (
	"context"  // Context for persistence
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"strings"  // Input trimming
	"time"     // Cache TTL

	"sthira/internal/accounts"   // Account repository
	"sthira/internal/app"        // Session state machine
	"sthira/internal/dashboard"  // Public profiles
	"sthira/internal/domain"     // Roles
	"sthira/internal/middleware" // Session context
	"sthira/internal/session"    // Session store
	"sthira/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// studentsCacheTTL bounds how long a page may be served from Redis
const studentsCacheTTL = 60 * time.Second

// Request struct for the trainer profile form
type TrainerProfileRequest struct {
	Name           string `json:"name" binding:"required"`             // Display name
	Experience     *int   `json:"experience" binding:"required,min=0"` // Years of experience
	Specialization string `json:"specialization" binding:"required"`   // Yoga styles
	Location       string `json:"location" binding:"required"`         // City or studio
	Bio            string `json:"bio"`                                 // Optional
}

// StudentSummary is what a trainer sees about an end-user
type StudentSummary struct {
	ID               int64     `json:"id"`                         // Account id
	Name             string    `json:"name"`                       // Display name
	JoinDate         time.Time `json:"joinDate"`                   // Signup time
	Streak           int       `json:"streak"`                     // Practice streak
	TotalSessions    int       `json:"totalSessions"`              // Completed sessions
	AverageAccuracy  int       `json:"averageAccuracy"`            // Pose accuracy
	YogaExperience   string    `json:"yogaExperience,omitempty"`   // From onboarding
	PrimaryYogaGoal  string    `json:"primaryYogaGoal,omitempty"`  // From onboarding
	DesiredFrequency string    `json:"desiredFrequency,omitempty"` // From onboarding
}

// studentsPage is the cached response body
type studentsPage struct {
	Students   []StudentSummary `json:"students"`    // List of students
	Page       int              `json:"page"`        // Current page
	PageSize   int              `json:"page_size"`   // Page size
	Total      int              `json:"total"`       // Total number of students
	TotalPages int              `json:"total_pages"` // Total pages
	Cached     bool             `json:"cached"`      // Served from Redis
}

// TrainerProfileHandler updates the trainer's profile and the banner name
func TrainerProfileHandler(repo *accounts.Repository, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TrainerProfileRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields"})
			return
		}
		name := strings.TrimSpace(req.Name)
		specialization := strings.TrimSpace(req.Specialization)
		location := strings.TrimSpace(req.Location)
		if name == "" || specialization == "" || location == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields"})
			return
		}
		state := middleware.State(c)
		transition(c, sessions, app.ProfileUpdated{Name: name}, func(ctx context.Context, _ []app.Event) (gin.H, error) {
			acc, err := repo.Update(ctx, domain.RoleTrainer, state.AccountID, func(a *domain.Account) {
				a.Name = name
				a.Experience = *req.Experience
				a.Specialization = specialization
				a.Location = location
				a.Bio = strings.TrimSpace(req.Bio)
			})
			if err != nil {
				return nil, err
			}
			logrus.WithField("account_id", acc.ID).Info("Trainer profile updated")
			return gin.H{"profile": dashboard.PublicProfile(acc), "message": "Profile updated successfully!"}, nil
		})
	}
}

// ListStudentsHandler returns a page of end-users, cached per store version
func ListStudentsHandler(repo *accounts.Repository, rdb redis.Cmdable) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		page := 1      // Default page number
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// Check and set page size within limits
		if ps := c.Query("page_size"); ps != "" {
			// If valid, set page size
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size
			}
		}
		cacheKey := utils.StudentsKey(repo.Version(), page, pageSize) // Any mutation changes the key
		var cached studentsPage
		// If cached data found, return it
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			cached.Cached = true // Indicate response is from cache
			c.JSON(http.StatusOK, cached)
			return
		}
		users := repo.Users()
		resp := studentsPage{
			Students:   []StudentSummary{},
			Page:       page,
			PageSize:   pageSize,
			Total:      len(users),
			TotalPages: (len(users) + pageSize - 1) / pageSize, // Calculate total pages
		}
		// Pages past the end are empty; checked before the offset can overflow
		if page <= resp.TotalPages {
			offset := (page - 1) * pageSize // Calculate offset for pagination
			end := min(offset+pageSize, len(users))
			// Map users to response format
			for i := offset; i < end; i++ {
				resp.Students = append(resp.Students, summarize(users[i]))
			}
		}
		// Cache the response for future requests
		if err := utils.SetCache(ctx, rdb, cacheKey, resp, studentsCacheTTL); err != nil {
			logrus.WithField("error", err.Error()).Warn("Failed to cache students page")
		}
		c.JSON(http.StatusOK, resp) // Return the response
	}
}

func summarize(a domain.Account) StudentSummary {
	s := StudentSummary{
		ID:              a.ID,
		Name:            a.Name,
		JoinDate:        a.JoinDate,
		Streak:          a.Streak,
		TotalSessions:   a.TotalSessions,
		AverageAccuracy: a.AverageAccuracy,
	}
	if d := a.OnboardingData; d != nil {
		s.YogaExperience = d.YogaExperience
		s.PrimaryYogaGoal = d.PrimaryYogaGoal
		s.DesiredFrequency = d.DesiredFrequency
	}
	return s
}
