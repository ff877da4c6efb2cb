// Package storage keeps the whole account store as one serialized snapshot
// in a durable key-value slot.
package storage

import (
	"context" // Context for slot operations
	"sync"    // Mutex for the in-memory slot
)

// DefaultKey is the storage key used when none is configured
const DefaultKey = "sthiraAIUserData"

// Slot is a single durable location holding an opaque payload
type Slot interface {
	// Read returns the stored payload; found is false when nothing was written yet
	Read(ctx context.Context) (data []byte, found bool, err error)
	// Write replaces the stored payload
	Write(ctx context.Context, data []byte) error
}

// MemorySlot keeps the payload in process memory
type MemorySlot struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

// NewMemorySlot returns an empty in-memory slot
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (m *MemorySlot) Read(_ context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, false, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, true, nil
}

func (m *MemorySlot) Write(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append(m.data[:0], data...)
	m.set = true
	return nil
}
