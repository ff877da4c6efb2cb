// Package dashboard computes the figures shown on the user and trainer
// dashboards. Values under "simulated" are display-only and never stored.
package dashboard

import (
	"errors" // Sentinel errors
	"time"   // Join dates

	"sthira/internal/accounts" // Account repository
	"sthira/internal/domain"   // Account models
	"sthira/internal/simulate" // Simulated metrics
)

// Fallbacks shown when an account has no value of its own
const (
	DefaultAccuracy      = 85
	DefaultRating        = 4.8
	DefaultTotalStudents = 156
	DefaultActiveCourses = 12
	MonthlyPerformance   = 89
)

var ErrAccountGone = errors.New("account no longer exists")

// Profile is the public view of an account
type Profile struct {
	ID               int64                  `json:"id"`
	Name             string                 `json:"name"`
	Email            string                 `json:"email"`
	JoinDate         time.Time              `json:"joinDate"`
	Streak           int                    `json:"streak"`
	TotalSessions    int                    `json:"totalSessions"`
	AverageAccuracy  int                    `json:"averageAccuracy"`
	MetricsSimulated bool                   `json:"metricsSimulated"`
	Experience       int                    `json:"experience,omitempty"`
	Specialization   string                 `json:"specialization,omitempty"`
	Rating           float64                `json:"rating,omitempty"`
	Location         string                 `json:"location,omitempty"`
	Bio              string                 `json:"bio,omitempty"`
	OnboardingData   *domain.OnboardingData `json:"onboardingData,omitempty"`
}

// PublicProfile drops the password hash
func PublicProfile(a domain.Account) Profile {
	return Profile{
		ID:               a.ID,
		Name:             a.Name,
		Email:            a.Email,
		JoinDate:         a.JoinDate,
		Streak:           a.Streak,
		TotalSessions:    a.TotalSessions,
		AverageAccuracy:  a.AverageAccuracy,
		MetricsSimulated: a.MetricsSimulated,
		Experience:       a.Experience,
		Specialization:   a.Specialization,
		Rating:           a.Rating,
		Location:         a.Location,
		Bio:              a.Bio,
		OnboardingData:   a.OnboardingData,
	}
}

// Simulated holds generated figures, labelled so clients can tell them apart
type Simulated struct {
	SessionMinutes     int `json:"sessionMinutes,omitempty"`
	MonthlyPerformance int `json:"monthlyPerformance,omitempty"`
}

// UserStats is the user dashboard overview
type UserStats struct {
	Streak        int       `json:"streak"`
	Rank          int       `json:"rank"`
	Accuracy      int       `json:"accuracy"`
	TotalSessions int       `json:"totalSessions"`
	Simulated     Simulated `json:"simulated"`
}

// TrainerStats is the trainer dashboard overview
type TrainerStats struct {
	Rating        float64   `json:"rating"`
	TotalStudents int       `json:"totalStudents"`
	ActiveCourses int       `json:"activeCourses"`
	Simulated     Simulated `json:"simulated"`
}

// Presenter reads accounts and fills in fallbacks and simulated figures
type Presenter struct {
	repo    *accounts.Repository
	metrics simulate.Metrics
}

// NewPresenter creates a dashboard presenter
func NewPresenter(repo *accounts.Repository, metrics simulate.Metrics) *Presenter {
	return &Presenter{repo: repo, metrics: metrics}
}

// User returns the overview for an end-user. Computing the rank reorders
// the repository's user list.
func (p *Presenter) User(id int64) (Profile, UserStats, error) {
	acc, ok := p.repo.Get(domain.RoleUser, id)
	if !ok {
		return Profile{}, UserStats{}, ErrAccountGone
	}
	accuracy := acc.AverageAccuracy
	if accuracy == 0 {
		accuracy = DefaultAccuracy
	}
	return PublicProfile(acc), UserStats{
		Streak:        acc.Streak,
		Rank:          p.repo.Rank(id),
		Accuracy:      accuracy,
		TotalSessions: acc.TotalSessions,
		Simulated:     Simulated{SessionMinutes: p.metrics.SessionMinutes()},
	}, nil
}

// Trainer returns the overview for a trainer
func (p *Presenter) Trainer(id int64) (Profile, TrainerStats, error) {
	acc, ok := p.repo.Get(domain.RoleTrainer, id)
	if !ok {
		return Profile{}, TrainerStats{}, ErrAccountGone
	}
	stats := TrainerStats{
		Rating:        acc.Rating,
		TotalStudents: acc.TotalStudents,
		ActiveCourses: acc.ActiveCourses,
		Simulated:     Simulated{MonthlyPerformance: MonthlyPerformance},
	}
	if stats.Rating == 0 {
		stats.Rating = DefaultRating
	}
	if stats.TotalStudents == 0 {
		stats.TotalStudents = DefaultTotalStudents
	}
	if stats.ActiveCourses == 0 {
		stats.ActiveCourses = DefaultActiveCourses
	}
	return PublicProfile(acc), stats, nil
}
