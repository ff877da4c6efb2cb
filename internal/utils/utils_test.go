package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("abc", 42, "trainer", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.SessionID)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "trainer", claims.Role)
	assert.Equal(t, "abc", claims.ID)
}

func TestParseJWT_Rejects(t *testing.T) {
	token, err := GenerateJWT("abc", 1, "user", "secret", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(token, "other")
	assert.Error(t, err)

	expired, err := GenerateJWT("abc", 1, "user", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noSession, err := GenerateJWT("", 1, "user", "secret", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(noSession, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseJWT("not-a-token", "secret")
	assert.Error(t, err)
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)

	type entry struct {
		Name string `json:"name"`
	}
	var got entry
	found, err := GetCache(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetCache(ctx, rdb, "k", entry{Name: "tree"}, time.Minute))
	found, err = GetCache(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "tree", got.Name)

	mr.FastForward(2 * time.Minute)
	found, err = GetCache(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheCorruptAndDelete(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	require.NoError(t, mr.Set("bad", "{"))

	var v map[string]any
	found, err := GetCache(ctx, rdb, "bad", &v)
	assert.Error(t, err)
	assert.False(t, found)

	existed, err := DeleteCache(ctx, rdb, "bad")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = DeleteCache(ctx, rdb, "bad")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "session:xyz", SessionKey("xyz"))
	assert.Equal(t, "students:v3:page:2:limit:10", StudentsKey(3, 2, 10))
}
