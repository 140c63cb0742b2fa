package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLoginGuard(t *testing.T) {
	var guard LoginGuard = NoopLoginGuard{}
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		require.NoError(t, guard.RecordFailure(ctx, "alice"))
	}
	assert.NoError(t, guard.Check(ctx, "alice"))
	assert.NoError(t, guard.Reset(ctx, "alice"))
}

// Requires a reachable Redis; set REDIS_ADDR to run
func TestRedisLoginGuard(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	guard := NewRedisLoginGuard(client, 3, time.Minute)
	username := "guard-test-" + uuid.NewString()
	t.Cleanup(func() { _ = guard.Reset(ctx, username) })

	require.NoError(t, guard.Check(ctx, username))
	for i := 0; i < 3; i++ {
		require.NoError(t, guard.RecordFailure(ctx, username))
	}
	assert.ErrorIs(t, guard.Check(ctx, username), ErrLoginLocked)

	ttl, err := client.TTL(ctx, guard.key(username)).Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)

	require.NoError(t, guard.Reset(ctx, username))
	assert.NoError(t, guard.Check(ctx, username))
}

func TestNewRedisLoginGuard_Defaults(t *testing.T) {
	guard := NewRedisLoginGuard(nil, 0, 0)
	assert.Equal(t, 5, guard.maxAttempts)
	assert.Equal(t, 15*time.Minute, guard.window)
}
