package ports

import (
	"context"
	"time"

	"solana-lottery/internal/core/domain"
)

// NonceStore issues and consumes single-use tokens.
type NonceStore interface {
	// Issue stores a fresh random token for the wallet with the kind's TTL.
	Issue(ctx context.Context, walletAddress string, kind domain.NonceKind) (string, error)
	// Consume atomically deletes a matching live token. It returns false
	// when the token is unknown, expired or already consumed.
	Consume(ctx context.Context, walletAddress string, kind domain.NonceKind, token string) (bool, error)
}

// DepositCounter tracks verified deposits per wallet per calendar day.
type DepositCounter interface {
	Increment(ctx context.Context, walletAddress string, day time.Time) (int64, error)
	Count(ctx context.Context, walletAddress string, day time.Time) (int64, error)
}

// ReplayGuard marks a value as used exactly once within a TTL.
type ReplayGuard interface {
	// Claim returns true the first time a scope/value pair is seen.
	Claim(ctx context.Context, scope, value string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, scope, value string) error
}

// DrawLock provides mutual exclusion for draw cycles across processes.
type DrawLock interface {
	// Acquire returns a release token when the lock was obtained, or "" when held elsewhere.
	Acquire(ctx context.Context, ttl time.Duration) (string, error)
	Release(ctx context.Context, token string) error
}
