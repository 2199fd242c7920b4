package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	maxAttempts   = 10
)

// LoginThrottle counts failed login attempts per login in Redis.
// Key format: login_attempts:<login>, expiring after attemptWindow.
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// TooManyAttempts reports whether the login has exhausted its attempt budget
// for the current window.
func (t *LoginThrottle) TooManyAttempts(ctx context.Context, login string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(login)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= maxAttempts, nil
}

// RecordFailure bumps the failed-attempt counter and refreshes the window.
func (t *LoginThrottle) RecordFailure(ctx context.Context, login string) error {
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, t.key(login))
	pipe.Expire(ctx, t.key(login), attemptWindow)
	_, err := pipe.Exec(ctx)
	return err
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, login string) error {
	return t.client.Del(ctx, t.key(login)).Err()
}

func (t *LoginThrottle) key(login string) string {
	return fmt.Sprintf("login_attempts:%s", login)
}
