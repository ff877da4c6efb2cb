package auth

import (
	"context"
	"testing"
	"time"

	"sthira/internal/accounts"
	"sthira/internal/app"
	"sthira/internal/domain"
	"sthira/internal/session"
	"sthira/internal/storage"
	"sthira/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

type fixture struct {
	svc      *Service
	repo     *accounts.Repository
	sessions *session.RedisStore
	slot     *storage.MemorySlot
	mr       *miniredis.Miniredis
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	slot := storage.NewMemorySlot()
	repo := accounts.NewRepository(context.Background(), storage.NewPersistence(slot))
	sessions := session.NewRedisStore(rdb, time.Hour)
	return fixture{
		svc:      NewService(repo, sessions, secret, time.Hour),
		repo:     repo,
		sessions: sessions,
		slot:     slot,
		mr:       mr,
	}
}

func form(email, password string) SignupInput {
	return SignupInput{Name: "Asha", Email: email, Password: password, ConfirmPassword: password}
}

func TestSignup_OpensOnboardingSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.svc.Signup(ctx, domain.RoleUser, form("asha@example.com", "secret1"))
	require.NoError(t, err)
	assert.Equal(t, app.ViewOnboarding, res.State.View)
	assert.Equal(t, "Welcome, Asha!", res.State.Banner())
	assert.Zero(t, res.Account.Streak)
	assert.NotEqual(t, "secret1", res.Account.PasswordHash)

	claims, err := utils.ParseJWT(res.Token, secret)
	require.NoError(t, err)
	assert.Equal(t, res.SessionID, claims.SessionID)
	assert.Equal(t, res.Account.ID, claims.AccountID)
	assert.Equal(t, "user", claims.Role)

	stored, err := f.sessions.Get(ctx, res.SessionID)
	require.NoError(t, err)
	assert.Equal(t, res.State, stored)

	persisted := storage.NewPersistence(f.slot).Load(ctx)
	require.Len(t, persisted.Users, 1)
	assert.Equal(t, "asha@example.com", persisted.Users[0].Email)
}

func TestSignup_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name string
		in   SignupInput
		want error
	}{
		{"missing name", SignupInput{Email: "a@example.com", Password: "secret1", ConfirmPassword: "secret1"}, ErrMissingFields},
		{"blank email", form("  ", "secret1"), ErrMissingFields},
		{"mismatch", SignupInput{Name: "A", Email: "a@example.com", Password: "secret1", ConfirmPassword: "secret2"}, ErrPasswordMismatch},
		{"five characters", form("a@example.com", "abcde"), ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Signup(ctx, domain.RoleUser, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, f.repo.Users())
	assert.Empty(t, f.mr.Keys())

	_, err := f.svc.Signup(ctx, domain.RoleUser, form("a@example.com", "abcdef"))
	assert.NoError(t, err)
}

func TestSignup_DuplicateEmailPerRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Signup(ctx, domain.RoleUser, form("same@example.com", "secret1"))
	require.NoError(t, err)
	_, err = f.svc.Signup(ctx, domain.RoleUser, form("same@example.com", "secret1"))
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, f.repo.Users(), 1)

	res, err := f.svc.Signup(ctx, domain.RoleTrainer, form("same@example.com", "secret1"))
	require.NoError(t, err)
	assert.Equal(t, app.ViewTrainerDashboard, res.State.View)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Signup(ctx, domain.RoleUser, form("asha@example.com", "secret1"))
	require.NoError(t, err)

	res, err := f.svc.Login(ctx, domain.RoleUser, "asha@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, app.ViewOnboarding, res.State.View)

	_, err = f.svc.Login(ctx, domain.RoleUser, "asha@example.com", "wrong!!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, domain.RoleUser, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, domain.RoleTrainer, "asha@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, domain.RoleUser, "", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLogin_OnboardedUserLandsOnDashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.repo.SeedDemo(ctx))

	res, err := f.svc.Login(ctx, domain.RoleUser, "sarah@example.com", "password123")
	require.NoError(t, err)
	// seeded accounts carry no onboarding data
	assert.Equal(t, app.ViewOnboarding, res.State.View)

	_, err = f.repo.Update(ctx, domain.RoleUser, res.Account.ID, func(a *domain.Account) {
		a.OnboardingData = &domain.OnboardingData{Age: 30}
	})
	require.NoError(t, err)

	res, err = f.svc.Login(ctx, domain.RoleUser, "sarah@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, app.ViewUserDashboard, res.State.View)
	assert.Equal(t, app.DefaultSection, res.State.Section)
}

func TestLogout_DeletesSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	res, err := f.svc.Signup(ctx, domain.RoleTrainer, form("emma@example.com", "secret1"))
	require.NoError(t, err)

	next, events, err := f.svc.Logout(ctx, res.SessionID, res.State)
	require.NoError(t, err)
	assert.Equal(t, app.Landing(), next)
	require.Len(t, events, 1)
	assert.Equal(t, app.SessionChanged{}, events[0])

	_, err = f.sessions.Get(ctx, res.SessionID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.Len(t, f.repo.Users(), 0)
}
