// Package session keeps each signed-in session's app.State in Redis.
package session

import (
	"context"       // Context for Redis operations
	"encoding/json" // State encoding inside transactions
	"errors"        // Sentinel errors
	"fmt"           // Error wrapping
	"reflect"       // State comparison
	"time"          // Session TTL

	"sthira/internal/app"   // Session state
	"sthira/internal/utils" // Redis cache helpers

	"github.com/redis/go-redis/v9" // Redis client
)

var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrSessionConflict = errors.New("Session changed by another request, please retry")
)

// Store maps session ids to their current state
type Store interface {
	Get(ctx context.Context, id string) (app.State, error)
	Put(ctx context.Context, id string, s app.State) error
	// Swap stores next only while the session still holds prev
	Swap(ctx context.Context, id string, prev, next app.State) error
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps one JSON value per session under session:<id>
type RedisStore struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// NewRedisStore returns a store whose entries expire after ttl of inactivity
func NewRedisStore(rdb redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Get loads the state for id
func (s *RedisStore) Get(ctx context.Context, id string) (app.State, error) {
	var st app.State
	found, err := utils.GetCache(ctx, s.rdb, utils.SessionKey(id), &st)
	if err != nil {
		return app.State{}, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return app.State{}, ErrSessionNotFound
	}
	return st, nil
}

// Put replaces the state for id and refreshes its TTL
func (s *RedisStore) Put(ctx context.Context, id string, st app.State) error {
	if err := utils.SetCache(ctx, s.rdb, utils.SessionKey(id), st, s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Swap replaces prev with next under WATCH. A concurrent write to the key
// between the read and the EXEC yields ErrSessionConflict.
func (s *RedisStore) Swap(ctx context.Context, id string, prev, next app.State) error {
	key := utils.SessionKey(id)
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	txf := func(tx *redis.Tx) error {
		b, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound // Logged out meanwhile
		} else if err != nil {
			return err
		}
		var cur app.State
		if err := json.Unmarshal(b, &cur); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		if !reflect.DeepEqual(cur, prev) {
			return ErrSessionConflict // Another request already moved on
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, s.ttl)
			return nil
		})
		return err
	}
	err = s.rdb.Watch(ctx, txf, key)
	switch {
	case errors.Is(err, redis.TxFailedErr):
		return ErrSessionConflict
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrSessionConflict):
		return err
	case err != nil:
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete ends the session. Deleting an unknown session is not an error.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if _, err := utils.DeleteCache(ctx, s.rdb, utils.SessionKey(id)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
