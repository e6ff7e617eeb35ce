package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if it still holds the caller's token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// DrawLock implements ports.DrawLock as a single Redis key with a TTL.
type DrawLock struct {
	client *goredis.Client
	key    string
}

// NewDrawLock creates a new Redis-backed draw lock.
func NewDrawLock(client *goredis.Client) *DrawLock {
	return &DrawLock{
		client: client,
		key:    "lock:draw",
	}
}

// Acquire returns a token when the lock was free, or "" when another holder has it.
func (l *DrawLock) Acquire(ctx context.Context, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	_, err := l.client.SetArgs(ctx, l.key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis draw lock acquire: %w", err)
	}
	return token, nil
}

// Release frees the lock if token still owns it.
func (l *DrawLock) Release(ctx context.Context, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.key}, token).Err(); err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis draw lock release: %w", err)
	}
	return nil
}
