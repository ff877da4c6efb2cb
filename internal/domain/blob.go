package domain

import (
	"time" // Update timestamps

	"gorm.io/datatypes" // JSON column type
)

// StoreBlob Model, one row per storage key holding the serialized Store
type StoreBlob struct {
	Key       string         `gorm:"primaryKey;size:191"` // Fixed storage key
	Value     datatypes.JSON `gorm:"not null"`            // Serialized snapshot
	UpdatedAt time.Time      // Last write
}
