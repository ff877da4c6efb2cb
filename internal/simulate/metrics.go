// Package simulate holds the platform's simulated "AI" features: randomized
// display metrics, delayed lookups against static tables, and the
// cancellable task runner that stands in for processing latency.
package simulate

import (
	"math/rand" // Pseudo-random metrics
	"sync"      // rand.Rand is not safe for concurrent use
	"time"      // Seeding
)

// Metrics generates display values with no persisted meaning of their own
type Metrics interface {
	// SessionMinutes is the per-render "today's session time"
	SessionMinutes() int
	// PostOnboarding returns the starting streak and accuracy for a yoga experience level
	PostOnboarding(experience string) (streak, accuracy int)
	// PoseAccuracy is the score of a simulated pose analysis
	PoseAccuracy() int
	// PickPose chooses an index into a pose table of length n
	PickPose(n int) int
}

// RandomMetrics implements Metrics over a seeded rand.Rand
type RandomMetrics struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomMetrics seeds from the clock when seed is zero
func NewRandomMetrics(seed int64) *RandomMetrics {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomMetrics{r: rand.New(rand.NewSource(seed))}
}

func (m *RandomMetrics) intn(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.r.Intn(n)
}

func (m *RandomMetrics) SessionMinutes() int {
	return m.intn(60) + 15
}

func (m *RandomMetrics) PostOnboarding(experience string) (int, int) {
	switch experience {
	case "complete-beginner":
		return 0, 0
	case "beginner":
		return m.intn(7) + 1, m.intn(20) + 60
	case "intermediate":
		return m.intn(14) + 7, m.intn(20) + 70
	default:
		return m.intn(30) + 15, m.intn(15) + 80
	}
}

func (m *RandomMetrics) PoseAccuracy() int {
	return m.intn(30) + 70
}

func (m *RandomMetrics) PickPose(n int) int {
	if n <= 0 {
		return 0
	}
	return m.intn(n)
}

// FixedMetrics returns the same values every call
type FixedMetrics struct {
	Minutes  int
	Streak   int
	Accuracy int
	Pose     int
	Score    int
}

func (f FixedMetrics) SessionMinutes() int { return f.Minutes }

func (f FixedMetrics) PostOnboarding(string) (int, int) { return f.Streak, f.Accuracy }

func (f FixedMetrics) PoseAccuracy() int { return f.Score }

func (f FixedMetrics) PickPose(n int) int {
	if n <= 0 {
		return 0
	}
	return f.Pose % n
}
