package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReplayGuard implements ports.ReplayGuard using Redis SET NX.
type ReplayGuard struct {
	client *goredis.Client
	prefix string
}

// NewReplayGuard creates a new Redis-backed replay guard.
func NewReplayGuard(client *goredis.Client) *ReplayGuard {
	return &ReplayGuard{
		client: client,
		prefix: "replay:",
	}
}

// Claim returns true if the value is new within scope, false if already claimed.
func (g *ReplayGuard) Claim(ctx context.Context, scope, value string, ttl time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.prefix+scope+":"+value, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis replay claim: %w", err)
	}
	return ok, nil
}

// Release forgets a claim so the value can be submitted again.
func (g *ReplayGuard) Release(ctx context.Context, scope, value string) error {
	if err := g.client.Del(ctx, g.prefix+scope+":"+value).Err(); err != nil {
		return fmt.Errorf("redis replay release: %w", err)
	}
	return nil
}
