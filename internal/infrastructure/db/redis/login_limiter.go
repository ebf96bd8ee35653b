package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 10
	defaultWindow      = time.Minute
)

// LoginLimiter is a fixed-window counter for login attempts backed by Redis.
// Key format: loginlimit:<key>, where key is typically username+client IP.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginLimiter creates a limiter allowing maxAttempts per window.
// Zero values fall back to 10 attempts per minute.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, maxAttempts: int64(maxAttempts), window: window}
}

// Allow counts an attempt and reports whether it is within the window budget.
// The first attempt in a window sets the key's expiry.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rkey := fmt.Sprintf("loginlimit:%s", key)

	n, err := l.client.Incr(ctx, rkey).Result()
	if err != nil {
		return false, fmt.Errorf("login limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, rkey, l.window).Err(); err != nil {
			return false, fmt.Errorf("login limit expire: %w", err)
		}
	}

	return n <= l.maxAttempts, nil
}
