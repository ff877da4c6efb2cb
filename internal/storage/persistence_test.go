package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"sthira/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ---- helpers ----

func sampleStore() *domain.Store {
	joined := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	s := domain.NewStore()
	s.Users = append(s.Users, domain.Account{
		ID:              1705311000000,
		Name:            "Sarah Johnson",
		Email:           "sarah@example.com",
		PasswordHash:    "$2a$10$hash",
		JoinDate:        joined,
		Streak:          28,
		TotalSessions:   45,
		AverageAccuracy: 92,
		OnboardingData: &domain.OnboardingData{
			Age:                    31,
			Gender:                 "female",
			Weight:                 70,
			Height:                 175,
			BMI:                    22.9,
			BMICategory:            domain.BMINormal,
			YogaExperience:         "beginner",
			PrimaryYogaGoal:        "flexibility",
			CurrentFrequency:       "never",
			DesiredFrequency:       "3-4",
			PreferredSessionLength: "30",
			CompletedAt:            joined.Add(time.Hour),
		},
	})
	s.Trainers = append(s.Trainers, domain.Account{
		ID:             1705311000001,
		Name:           "Emma Wilson",
		Email:          "sarah@example.com",
		PasswordHash:   "$2a$10$other",
		JoinDate:       joined,
		Experience:     5,
		Specialization: "Hatha Yoga, Meditation",
		Rating:         4.9,
		TotalStudents:  200,
		ActiveCourses:  8,
	})
	return s
}

func newRedisSlot(t *testing.T) (*RedisSlot, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisSlot(rdb, ""), mr
}

func newGormSlot(t *testing.T) *GormSlot {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.StoreBlob{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewGormSlot(db, "")
}

type brokenSlot struct{}

func (brokenSlot) Read(context.Context) ([]byte, bool, error) {
	return nil, false, errors.New("storage unavailable")
}

func (brokenSlot) Write(context.Context, []byte) error {
	return errors.New("storage unavailable")
}

// ---- tests ----

func TestPersistence_RoundTrip(t *testing.T) {
	redisSlot, _ := newRedisSlot(t)
	slots := map[string]Slot{
		"memory": NewMemorySlot(),
		"redis":  redisSlot,
		"gorm":   newGormSlot(t),
	}
	for name, slot := range slots {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := NewPersistence(slot)

			want := sampleStore()
			require.NoError(t, p.Save(ctx, want))

			got := p.Load(ctx)
			assert.Equal(t, want, got)
		})
	}
}

func TestPersistence_SaveOverwritesSnapshot(t *testing.T) {
	ctx := context.Background()
	p := NewPersistence(newGormSlot(t))

	s := sampleStore()
	require.NoError(t, p.Save(ctx, s))
	s.Users = s.Users[:0]
	require.NoError(t, p.Save(ctx, s))

	got := p.Load(ctx)
	assert.Empty(t, got.Users)
	assert.Len(t, got.Trainers, 1)
}

func TestPersistence_LoadWithoutSaveIsEmpty(t *testing.T) {
	got := NewPersistence(NewMemorySlot()).Load(context.Background())
	require.NotNil(t, got.Users)
	require.NotNil(t, got.Trainers)
	assert.Empty(t, got.Users)
	assert.Empty(t, got.Trainers)
}

func TestPersistence_CorruptDataResetsToEmpty(t *testing.T) {
	slot, mr := newRedisSlot(t)
	require.NoError(t, mr.Set(DefaultKey, "{not json"))

	got := NewPersistence(slot).Load(context.Background())
	assert.Equal(t, domain.NewStore(), got)
}

func TestPersistence_NullListsAreNormalized(t *testing.T) {
	slot := NewMemorySlot()
	require.NoError(t, slot.Write(context.Background(), []byte(`{"users":null}`)))

	got := NewPersistence(slot).Load(context.Background())
	assert.Equal(t, domain.NewStore(), got)
}

func TestPersistence_UnavailableStorage(t *testing.T) {
	p := NewPersistence(brokenSlot{})
	assert.Equal(t, domain.NewStore(), p.Load(context.Background()))
	assert.Error(t, p.Save(context.Background(), sampleStore()))
}
