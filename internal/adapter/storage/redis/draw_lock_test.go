package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawLock_MutualExclusion(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewDrawLock(client)
	ctx := context.Background()

	token, err := lock.Acquire(ctx, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	second, err := lock.Acquire(ctx, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, second, "lock is held")

	require.NoError(t, lock.Release(ctx, token))

	third, err := lock.Acquire(ctx, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, third)
}

func TestDrawLock_ReleaseWithStaleTokenKeepsLock(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewDrawLock(client)
	ctx := context.Background()

	token, err := lock.Acquire(ctx, time.Minute)
	require.NoError(t, err)

	require.NoError(t, lock.Release(ctx, "not-the-owner"))

	val, err := s.Get("lock:draw")
	require.NoError(t, err)
	assert.Equal(t, token, val)
}

func TestDrawLock_ExpiresAfterTTL(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewDrawLock(client)
	ctx := context.Background()

	_, err := lock.Acquire(ctx, time.Minute)
	require.NoError(t, err)

	s.FastForward(61 * time.Second)

	token, err := lock.Acquire(ctx, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token, "stale lock should expire")
}
