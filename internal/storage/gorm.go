package storage

import (
	"context" // Context for DB operations
	"errors"  // Error inspection
	"time"    // Update timestamps

	"sthira/internal/domain" // Blob model

	"gorm.io/datatypes"   // JSON column type
	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Upsert clause
)

// GormSlot stores the payload in one row of the store_blobs table
type GormSlot struct {
	db  *gorm.DB // Database handle
	key string   // Row primary key
}

// NewGormSlot creates a slot bound to key. The table must already be migrated.
func NewGormSlot(db *gorm.DB, key string) *GormSlot {
	if key == "" {
		key = DefaultKey
	}
	return &GormSlot{db: db, key: key}
}

// Read loads the row for the slot key
func (s *GormSlot) Read(ctx context.Context) ([]byte, bool, error) {
	var blob domain.StoreBlob
	err := s.db.WithContext(ctx).Where(&domain.StoreBlob{Key: s.key}).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil // Nothing saved yet
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(blob.Value), true, nil
}

// Write upserts the row for the slot key
func (s *GormSlot) Write(ctx context.Context, data []byte) error {
	blob := domain.StoreBlob{Key: s.key, Value: datatypes.JSON(data), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}
