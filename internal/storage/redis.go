package storage

import (
	"context" // Context for Redis operations
	"errors"  // Error inspection

	"github.com/redis/go-redis/v9" // Redis client
)

// RedisSlot stores the payload under a single Redis key without expiry
type RedisSlot struct {
	rdb *redis.Client // Redis client
	key string        // Storage key
}

// NewRedisSlot creates a slot bound to key
func NewRedisSlot(rdb *redis.Client, key string) *RedisSlot {
	if key == "" {
		key = DefaultKey
	}
	return &RedisSlot{rdb: rdb, key: key}
}

// Read fetches the payload from Redis
func (s *RedisSlot) Read(ctx context.Context) ([]byte, bool, error) {
	val, err := s.rdb.Get(ctx, s.key).Bytes() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return nil, false, nil // Key does not exist
	} else if err != nil {
		return nil, false, err // Other Redis error
	}
	return val, true, nil
}

// Write stores the payload with no TTL
func (s *RedisSlot) Write(ctx context.Context, data []byte) error {
	return s.rdb.Set(ctx, s.key, data, 0).Err()
}
