package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrLoginLocked is returned by LoginGuard.Check while a username is locked out
var ErrLoginLocked = errors.New("too many failed login attempts")

// LoginGuard throttles repeated failed logins per username
type LoginGuard interface {
	Check(ctx context.Context, username string) error
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// NoopLoginGuard never locks anyone out. Used when Redis is not configured.
type NoopLoginGuard struct{}

func (NoopLoginGuard) Check(context.Context, string) error         { return nil }
func (NoopLoginGuard) RecordFailure(context.Context, string) error { return nil }
func (NoopLoginGuard) Reset(context.Context, string) error         { return nil }

// RedisLoginGuard counts failures in Redis so every replica shares the same lockout.
// The counter expires window after the first failure.
type RedisLoginGuard struct {
	client      redis.Cmdable
	maxAttempts int
	window      time.Duration
	keyPrefix   string
}

// NewRedisLoginGuard creates a Redis backed LoginGuard
func NewRedisLoginGuard(client redis.Cmdable, maxAttempts int, window time.Duration) *RedisLoginGuard {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RedisLoginGuard{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
		keyPrefix:   "bulletin-board:login-failures:",
	}
}

func (g *RedisLoginGuard) key(username string) string {
	return g.keyPrefix + username
}

// Check returns ErrLoginLocked once maxAttempts failures are recorded within the window
func (g *RedisLoginGuard) Check(ctx context.Context, username string) error {
	count, err := g.client.Get(ctx, g.key(username)).Int()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read login failures: %w", err)
	}
	if count >= g.maxAttempts {
		return ErrLoginLocked
	}
	return nil
}

// RecordFailure increments the failure counter, starting the window on the first failure
func (g *RedisLoginGuard) RecordFailure(ctx context.Context, username string) error {
	key := g.key(username)
	count, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}
	if count == 1 {
		if err := g.client.Expire(ctx, key, g.window).Err(); err != nil {
			return fmt.Errorf("failed to set login failure window: %w", err)
		}
	}
	return nil
}

// Reset clears the failure counter after a successful login
func (g *RedisLoginGuard) Reset(ctx context.Context, username string) error {
	if err := g.client.Del(ctx, g.key(username)).Err(); err != nil {
		return fmt.Errorf("failed to reset login failures: %w", err)
	}
	return nil
}
