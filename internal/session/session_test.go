package session

import (
	"context"
	"testing"
	"time"

	"sthira/internal/app"
	"sthira/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, time.Hour), mr
}

func TestPutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	st, _, err := app.Update(app.Landing(), app.SignIn{Role: domain.RoleUser, Account: domain.Account{ID: 5, Name: "Asha"}})
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "s1", st))
	assert.True(t, mr.Exists("session:s1"))
	assert.Equal(t, time.Hour, mr.TTL("session:s1"))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, st, got)
	require.NotNil(t, got.Wizard)
	assert.Equal(t, 1, got.Wizard.Step)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, store.Delete(ctx, "s1"))
}

func TestGet_Expired(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)
	require.NoError(t, store.Put(ctx, "s2", app.Landing()))

	mr.FastForward(2 * time.Hour)
	_, err := store.Get(ctx, "s2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGet_Corrupt(t *testing.T) {
	store, mr := newStore(t)
	require.NoError(t, mr.Set("session:bad", "not json"))
	_, err := store.Get(context.Background(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestSwap(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	start, _, err := app.Update(app.Landing(), app.SignIn{Role: domain.RoleUser, Account: domain.Account{ID: 5, Name: "Asha"}})
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "s3", start))
	loaded, err := store.Get(ctx, "s3")
	require.NoError(t, err)

	// two requests read the same state; the first write wins
	first, _, err := app.Update(loaded, app.SignOut{})
	require.NoError(t, err)
	second, _, err := app.Update(loaded, app.ProfileUpdated{Name: "Asha R."})
	require.NoError(t, err)

	require.NoError(t, store.Swap(ctx, "s3", loaded, first))
	assert.ErrorIs(t, store.Swap(ctx, "s3", loaded, second), ErrSessionConflict)

	got, err := store.Get(ctx, "s3")
	require.NoError(t, err)
	assert.Equal(t, first, got)
	assert.Equal(t, time.Hour, mr.TTL("session:s3"))

	require.NoError(t, store.Delete(ctx, "s3"))
	assert.ErrorIs(t, store.Swap(ctx, "s3", first, second), ErrSessionNotFound)
	assert.False(t, mr.Exists("session:s3"))
}
