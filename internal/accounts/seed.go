package accounts

import (
	"context" // Context for persistence
	"fmt"     // Error wrapping
	"time"    // Join dates

	"sthira/internal/domain" // Account models

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

const demoPassword = "password123"

// SeedDemo fills an empty user list with the demo accounts, and the trainer
// list too when it is empty. It does nothing when users exist.
func (r *Repository) SeedDemo(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.store.Users) > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	r.store.Users = []domain.Account{
		{ID: 1, Name: "Sarah Johnson", Email: "sarah@example.com", PasswordHash: string(hash), JoinDate: day(2024, 1, 15), Streak: 28, TotalSessions: 45, AverageAccuracy: 92},
		{ID: 2, Name: "Mike Chen", Email: "mike@example.com", PasswordHash: string(hash), JoinDate: day(2024, 1, 20), Streak: 25, TotalSessions: 38, AverageAccuracy: 88},
	}
	if len(r.store.Trainers) == 0 {
		r.store.Trainers = []domain.Account{
			{ID: 1, Name: "Emma Wilson", Email: "emma@example.com", PasswordHash: string(hash), JoinDate: day(2024, 1, 10), Experience: 5, Specialization: "Hatha Yoga, Meditation", Rating: 4.9, TotalStudents: 200, ActiveCourses: 8},
		}
	}
	if r.lastID < 2 {
		r.lastID = 2
	}
	r.save(ctx)
	logrus.WithField("users", len(r.store.Users)).Info("Demo accounts seeded")
	return nil
}
