package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // redis.Nil comparison
	"fmt"           // Key formatting
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// SessionKey is the Redis key holding one session's state
func SessionKey(sessionID string) string {
	return "session:" + sessionID
}

// StudentsKey is the Redis key for one page of the student list at a store version
func StudentsKey(version uint64, page, limit int) string {
	return fmt.Sprintf("students:v%d:page:%d:limit:%d", version, page, limit)
}

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb redis.Cmdable, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Bytes() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err) // Corrupt entry
	}
	return true, nil
}

// SetCache sets a value in Redis with a specified TTL; zero means no expiry
func SetCache(ctx context.Context, rdb redis.Cmdable, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes a key from Redis and reports whether it existed
func DeleteCache(ctx context.Context, rdb redis.Cmdable, key string) (bool, error) {
	n, err := rdb.Del(ctx, key).Result() // Delete key from Redis
	return n > 0, err
}
