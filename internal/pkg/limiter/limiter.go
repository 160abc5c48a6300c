// Package limiter provides a Redis-backed attempt counter used to slow down
// brute-force guessing of one-time codes.
package limiter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// AttemptLimiter counts failed attempts against a key within a window.
type AttemptLimiter interface {
	// Hit records a failed attempt and returns the total within the window.
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
	// Exceeded reports whether the key already passed the given limit.
	Exceeded(ctx context.Context, key string, limit int64) (bool, error)
	// Reset clears the counter for the key.
	Reset(ctx context.Context, key string) error
}

// RedisLimiter implements AttemptLimiter on a Redis client.
type RedisLimiter struct {
	client *redis.Client
	prefix string
}

// New creates a RedisLimiter.
func New(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: "limiter:",
	}
}

// Hit increments the counter for key. The window TTL is set only when the
// key is created, so the window is measured from the first failed attempt.
func (l *RedisLimiter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	fk := l.prefix + key

	count, err := l.client.Incr(ctx, fk).Result()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		if err := l.client.Expire(ctx, fk, window).Err(); err != nil {
			return count, err
		}
	}

	return count, nil
}

// Exceeded reports whether the counter for key is at or above limit.
func (l *RedisLimiter) Exceeded(ctx context.Context, key string, limit int64) (bool, error) {
	count, err := l.client.Get(ctx, l.prefix+key).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return count >= limit, nil
}

// Reset removes the counter for key.
func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.prefix+key).Err()
}
