package api

import (
	"sthira/internal/accounts"   // Account repository
	"sthira/internal/auth"       // Authentication service
	"sthira/internal/dashboard"  // Dashboard presenter
	"sthira/internal/domain"     // Roles
	"sthira/internal/middleware" // Session and role middleware
	"sthira/internal/session"    // Session store
	"sthira/internal/simulate"   // Simulated services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Deps are the services the handlers are built from
type Deps struct {
	Repo      *accounts.Repository
	Auth      *auth.Service
	Sessions  session.Store
	Presenter *dashboard.Presenter
	Metrics   simulate.Metrics
	Delays    simulate.Delays
	Redis     redis.Cmdable
	JWTSecret string
}

// RegisterRoutes mounts every endpoint on r
func RegisterRoutes(r *gin.Engine, d Deps) {
	// Public routes
	r.POST("/auth/:role/signup", SignupHandler(d.Auth)) // Signup endpoint
	r.POST("/auth/:role/login", LoginHandler(d.Auth))   // Login endpoint
	r.GET("/bmi", BMIHandler())                         // Live BMI reading

	// Session routes (protected by JWT + Redis session)
	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.SessionAuthMiddleware(d.JWTSecret, d.Sessions))
	apiGroup.POST("/logout", LogoutHandler(d.Auth))                                                 // Logout endpoint
	apiGroup.GET("/session", SessionHandler())                                                      // Current state
	apiGroup.POST("/onboarding/next", OnboardingNextHandler(d.Repo, d.Sessions, d.Metrics))         // Next wizard step
	apiGroup.POST("/onboarding/previous", OnboardingPreviousHandler(d.Sessions))                    // Previous wizard step
	apiGroup.POST("/onboarding/complete", OnboardingCompleteHandler(d.Repo, d.Sessions, d.Metrics)) // Finish onboarding
	apiGroup.GET("/dashboard", DashboardHandler(d.Presenter))                                       // Dashboard stats
	apiGroup.PUT("/dashboard/section", SectionHandler(d.Sessions))                                  // Switch section

	// Assistant routes (end-users only)
	assistant := apiGroup.Group("/assistant")
	assistant.Use(middleware.RoleMiddleware(domain.RoleUser))
	assistant.POST("/health", HealthHandler(d.Delays))                // Health recommendation
	assistant.POST("/pose", PoseHandler(d.Repo, d.Metrics, d.Delays)) // Pose analysis
	assistant.POST("/diet", DietHandler(d.Delays))                    // Diet plan
	assistant.GET("/recipes/:name", RecipeHandler())                  // Recipe details
	assistant.GET("/kids/:ageGroup", KidsProgramsHandler())           // Kids yoga programs
	assistant.GET("/trainers", SearchTrainersHandler(d.Repo))         // Trainer directory

	// Trainer routes (trainers only)
	trainer := apiGroup.Group("/trainer")
	trainer.Use(middleware.RoleMiddleware(domain.RoleTrainer))
	trainer.PUT("/profile", TrainerProfileHandler(d.Repo, d.Sessions)) // Profile form
	trainer.GET("/students", ListStudentsHandler(d.Repo, d.Redis))     // Paginated students
}
