package db

import (
	"fmt" // Error wrapping

	"sthira/internal/config" // Backend selection
	"sthira/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM log levels
)

// Open connects to the SQL database selected by cfg.StoreBackend
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StoreBackend {
	case config.BackendMySQL:
		dialector = mysql.Open(cfg.DSN())
	case config.BackendSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("store backend %q has no SQL database", cfg.StoreBackend)
	}
	level := logger.Warn
	if cfg.IsProd {
		level = logger.Error
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(level)}) // Open a connection to the database
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.StoreBackend, err)
	}
	return db, nil
}

// Migrate creates or updates the store slot table
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(&domain.StoreBlob{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
