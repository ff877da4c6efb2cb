package domain

import (
	"fmt"     // Error formatting
	"strings" // String manipulation
	"time"    // Timestamps
)

// Role distinguishes end-users from trainers
type Role string

const (
	RoleUser    Role = "user"    // End-user practicing yoga
	RoleTrainer Role = "trainer" // Trainer running courses
)

// ParseRole converts a path parameter into a Role
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleTrainer:
		return RoleTrainer, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Account Model, shared by users and trainers
type Account struct {
	ID               int64           `json:"id"`                       // Creation time in unix milliseconds
	Name             string          `json:"name"`                     // Display name
	Email            string          `json:"email"`                    // Login key, unique within one role
	PasswordHash     string          `json:"passwordHash"`             // Bcrypt digest
	JoinDate         time.Time       `json:"joinDate"`                 // Signup time
	Streak           int             `json:"streak"`                   // Consecutive practice days
	TotalSessions    int             `json:"totalSessions"`            // Completed sessions
	AverageAccuracy  int             `json:"averageAccuracy"`          // Pose accuracy percent
	MetricsSimulated bool            `json:"metricsSimulated"`         // Streak/accuracy came from the simulated generator
	Experience       int             `json:"experience,omitempty"`     // Trainer: years of experience
	Specialization   string          `json:"specialization,omitempty"` // Trainer: yoga styles
	Rating           float64         `json:"rating,omitempty"`         // Trainer: average rating
	TotalStudents    int             `json:"totalStudents,omitempty"`  // Trainer: students taught
	ActiveCourses    int             `json:"activeCourses,omitempty"`  // Trainer: running courses
	Location         string          `json:"location,omitempty"`       // Trainer: city or studio
	Bio              string          `json:"bio,omitempty"`            // Trainer: free text
	OnboardingData   *OnboardingData `json:"onboardingData,omitempty"` // Present once onboarding completed
}

// Onboarded reports whether the account finished the onboarding wizard
func (a *Account) Onboarded() bool {
	return a.OnboardingData != nil
}

// OnboardingData is the snapshot captured when the wizard completes.
// It is never recomputed afterwards.
type OnboardingData struct {
	Age                    int       `json:"age"`
	Gender                 string    `json:"gender"`
	Weight                 float64   `json:"weight"` // kg
	Height                 float64   `json:"height"` // cm
	BMI                    float64   `json:"bmi"`
	BMICategory            string    `json:"bmiCategory"`
	FitnessGoals           string    `json:"fitnessGoals,omitempty"`
	YogaExperience         string    `json:"yogaExperience"`
	PrimaryYogaGoal        string    `json:"primaryYogaGoal"`
	CurrentFrequency       string    `json:"currentFrequency"`
	PrimaryReason          string    `json:"primaryReason,omitempty"`
	DesiredFrequency       string    `json:"desiredFrequency"`
	PreferredSessionLength string    `json:"preferredSessionLength"`
	CompletedAt            time.Time `json:"completedAt"`
}
