package storage

import (
	"context"       // Context for slot operations
	"encoding/json" // Snapshot serialization
	"fmt"           // Error wrapping

	"sthira/internal/domain" // Store model

	"github.com/sirupsen/logrus" // Logging library
)

// Persistence loads and saves the whole Store through a Slot
type Persistence struct {
	slot Slot
}

// NewPersistence wraps slot
func NewPersistence(slot Slot) *Persistence {
	return &Persistence{slot: slot}
}

// Load reads the store. Missing, unreadable or corrupt data yields an empty store;
// the failure is logged and never returned.
func (p *Persistence) Load(ctx context.Context) *domain.Store {
	data, found, err := p.slot.Read(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Store unavailable, starting empty")
		return domain.NewStore()
	}
	if !found {
		return domain.NewStore()
	}
	var s domain.Store
	if err := json.Unmarshal(data, &s); err != nil {
		logrus.WithFields(logrus.Fields{
			"bytes": len(data),  // Payload size
			"error": err.Error(), // Decode error
		}).Warn("Store data corrupt, starting empty")
		return domain.NewStore()
	}
	if s.Users == nil {
		s.Users = []domain.Account{}
	}
	if s.Trainers == nil {
		s.Trainers = []domain.Account{}
	}
	return &s
}

// Save writes a full snapshot of s
func (p *Persistence) Save(ctx context.Context, s *domain.Store) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := p.slot.Write(ctx, data); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}
