// Package accounts owns the in-memory account store and writes a full
// snapshot through storage.Persistence after every mutation.
package accounts

import (
	"context" // Context for persistence
	"errors"  // Sentinel errors
	"sort"    // Rank ordering
	"strings" // Trainer search
	"sync"    // Store guard
	"time"    // Id generation

	"sthira/internal/domain"  // Account models
	"sthira/internal/storage" // Snapshot persistence

	"github.com/getsentry/sentry-go" // Error reporting
	"github.com/sirupsen/logrus"     // Logging library
)

var (
	ErrEmailTaken = errors.New("user with this email already exists")
	ErrNotFound   = errors.New("account not found")
)

// Repository serializes access to the Store
type Repository struct {
	mu      sync.RWMutex
	persist *storage.Persistence
	store   *domain.Store
	lastID  int64
	version uint64
	now     func() time.Time
}

// NewRepository loads the store through persist
func NewRepository(ctx context.Context, persist *storage.Persistence) *Repository {
	s := persist.Load(ctx)
	return &Repository{
		persist: persist,
		store:   s,
		lastID:  s.MaxID(),
		now:     time.Now,
	}
}

// save writes the snapshot; failures are reported but never returned. Callers hold mu.
func (r *Repository) save(ctx context.Context) {
	r.version++
	if err := r.persist.Save(ctx, r.store); err != nil {
		logrus.WithFields(logrus.Fields{
			"version": r.version,   // Store version
			"error":   err.Error(), // Error message
		}).Error("Failed to persist store")
		sentry.CaptureException(err)
	}
}

// nextID is the creation time in milliseconds, bumped past the last issued id
func (r *Repository) nextID() int64 {
	id := r.now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

// Version increases on every mutation
func (r *Repository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Create appends a new account to the role's list. The id and join date are assigned here.
func (r *Repository) Create(ctx context.Context, role domain.Role, acc domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.store.IndexByEmail(role, acc.Email) >= 0 {
		return domain.Account{}, ErrEmailTaken
	}
	acc.ID = r.nextID()
	acc.JoinDate = r.now().UTC()
	list := r.store.List(role)
	*list = append(*list, acc)
	r.save(ctx)
	return acc, nil
}

// FindByEmail returns a copy of the account with this email in the role's list
func (r *Repository) FindByEmail(role domain.Role, email string) (domain.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.store.IndexByEmail(role, email)
	if i < 0 {
		return domain.Account{}, false
	}
	return (*r.store.List(role))[i], true
}

// Get returns a copy of the account with this id in the role's list
func (r *Repository) Get(role domain.Role, id int64) (domain.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.store.IndexByID(role, id)
	if i < 0 {
		return domain.Account{}, false
	}
	return (*r.store.List(role))[i], true
}

// Update applies fn to the stored account and persists the store
func (r *Repository) Update(ctx context.Context, role domain.Role, id int64, fn func(*domain.Account)) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.store.IndexByID(role, id)
	if i < 0 {
		return domain.Account{}, ErrNotFound
	}
	list := *r.store.List(role)
	fn(&list[i])
	r.save(ctx)
	return list[i], nil
}

// Users returns a copy of the end-user list in its current order
func (r *Repository) Users() []domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Account(nil), r.store.Users...)
}

// SearchTrainers returns copies of the trainers whose name, specialization or
// location contains query, ignoring case. A blank query matches everyone.
func (r *Repository) SearchTrainers(query string) []domain.Account {
	q := strings.ToLower(strings.TrimSpace(query))
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Account{}
	for _, t := range r.store.Trainers {
		if q == "" ||
			strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Specialization), q) ||
			strings.Contains(strings.ToLower(t.Location), q) {
			out = append(out, t)
		}
	}
	return out
}

// Rank sorts the live user list by streak, highest first, and returns the
// 1-based position of id, or 0 if absent. Ties keep their current order.
// A reordering bumps the version but is not persisted until the next mutation.
func (r *Repository) Rank(id int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := r.store.Users
	byStreak := func(i, j int) bool { return users[i].Streak > users[j].Streak }
	if !sort.SliceIsSorted(users, byStreak) {
		sort.SliceStable(users, byStreak)
		r.version++ // Cached pages hold the old order
	}
	for i, u := range users {
		if u.ID == id {
			return i + 1
		}
	}
	return 0
}
