package config

import (
	"fmt"     // Error formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // Backend normalization
	"time"    // Durations

	"github.com/joho/godotenv"   // For loading .env files
	"github.com/sirupsen/logrus" // Logging library
)

// Store backends
const (
	BackendRedis  = "redis"
	BackendMySQL  = "mysql"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds the application configuration
type Config struct {
	AppPort         string        // Application port
	DBUser          string        // Database user
	DBPassword      string        // Database password
	DBHost          string        // Database host
	DBPort          string        // Database port
	DBName          string        // Database name
	JWTSecret       string        // JWT secret key
	RedisAddr       string        // Redis server address
	RedisPass       string        // Redis password
	RedisDB         int           // Redis database number
	IsProd          bool          // Is production environment
	StoreBackend    string        // Where the account store lives
	StoreKey        string        // Slot key for the account store
	SQLitePath      string        // SQLite database file
	SessionTTL      time.Duration // Session and token lifetime
	SentryDSN       string        // Sentry DSN, empty disables reporting
	SeedDemo        bool          // Seed demo accounts into an empty store
	SimulateLatency bool          // Apply simulated processing delays
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:         getEnv("APP_PORT", "8080"),                             // Application port
		DBUser:          os.Getenv("DB_USER"),                                   // Database user
		DBPassword:      os.Getenv("DB_PASSWORD"),                               // Database password
		DBHost:          getEnv("DB_HOST", "127.0.0.1"),                         // Database host
		DBPort:          getEnv("DB_PORT", "3306"),                              // Database port
		DBName:          os.Getenv("DB_NAME"),                                   // Database name
		JWTSecret:       os.Getenv("JWT_SECRET"),                                // JWT secret key
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),                 // Redis server address
		RedisPass:       os.Getenv("REDIS_PASS"),                                // Redis password
		RedisDB:         redisDB,                                                // Redis database number
		IsProd:          os.Getenv("IS_PROD") == "true",                         // Is production environment
		StoreBackend:    strings.ToLower(getEnv("STORE_BACKEND", BackendRedis)), // Store backend
		StoreKey:        getEnv("STORE_KEY", "sthiraAIUserData"),                // Store slot key
		SQLitePath:      getEnv("SQLITE_PATH", "sthira.db"),                     // SQLite file
		SessionTTL:      parseDuration(os.Getenv("SESSION_TTL"), 24*time.Hour),  // Session lifetime
		SentryDSN:       os.Getenv("SENTRY_DSN"),                                // Sentry DSN
		SeedDemo:        os.Getenv("SEED_DEMO") == "true",                       // Demo accounts
		SimulateLatency: getEnv("SIMULATE_LATENCY", "true") == "true",           // Simulated delays
	}
}

// Validate reports settings the server cannot start without
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.StoreBackend {
	case BackendRedis, BackendMySQL, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	return nil
}

// DSN is the MySQL Data Source Name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		logrus.WithField("value", raw).Warn("Invalid duration, using default")
		return fallback
	}
	return d
}
