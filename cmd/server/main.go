package main

import (
	"context"   // context package is needed for Redis operations and shutdown
	"errors"    // Server close detection
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Graceful shutdown
	"syscall"   // Termination signals
	"time"      // Timeouts

	"sthira/internal/accounts"  // Account repository
	"sthira/internal/api"       // Custom package for API handlers
	"sthira/internal/auth"      // Authentication service
	"sthira/internal/config"    // Custom package for configuration
	"sthira/internal/dashboard" // Dashboard presenter
	"sthira/internal/db"        // SQL store backends
	"sthira/internal/session"   // Redis sessions
	"sthira/internal/simulate"  // Simulated services
	"sthira/internal/storage"   // Store slots

	"github.com/getsentry/sentry-go"               // Error reporting
	sentrygin "github.com/getsentry/sentry-go/gin" // Sentry middleware for Gin
	"github.com/gin-gonic/gin"                     // Gin web framework
	"github.com/redis/go-redis/v9"                 // Redis client
	"github.com/sirupsen/logrus"                   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine-readable logs in production
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN, AttachStacktrace: true}); err != nil {
			logrus.WithField("error", err.Error()).Error("Sentry init failed")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})
	defer redisClient.Close()

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Account store
	slot := openSlot(cfg, redisClient)
	repo := accounts.NewRepository(context.Background(), storage.NewPersistence(slot))
	if cfg.SeedDemo {
		if err := repo.SeedDemo(context.Background()); err != nil {
			logrus.Fatalf("failed to seed demo accounts: %v", err)
		}
	}

	// Simulated services
	metrics := simulate.NewRandomMetrics(0)
	delays := simulate.DefaultDelays
	if !cfg.SimulateLatency {
		delays = simulate.Delays{} // Answer immediately
	}

	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.RegisterRoutes(r, api.Deps{
		Repo:      repo,
		Auth:      auth.NewService(repo, sessions, cfg.JWTSecret, cfg.SessionTTL),
		Sessions:  sessions,
		Presenter: dashboard.NewPresenter(repo, metrics),
		Metrics:   metrics,
		Delays:    delays,
		Redis:     redisClient,
		JWTSecret: cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.WithFields(logrus.Fields{"port": cfg.AppPort, "store": cfg.StoreBackend}).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	<-quit
	logrus.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithField("error", err.Error()).Error("Server shutdown error")
	}
}

// openSlot picks where the account store is kept
func openSlot(cfg *config.Config, rdb *redis.Client) storage.Slot {
	switch cfg.StoreBackend {
	case config.BackendMySQL, config.BackendSQLite:
		conn, err := db.Open(cfg)
		if err != nil {
			logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
		}
		if err := db.Migrate(conn); err != nil {
			logrus.Fatalf("migration failed: %v", err)
		}
		return storage.NewGormSlot(conn, cfg.StoreKey)
	case config.BackendMemory:
		logrus.Warn("Using in-memory store; accounts are lost on restart")
		return storage.NewMemorySlot()
	default:
		return storage.NewRedisSlot(rdb, cfg.StoreKey)
	}
}
