package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"solana-lottery/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const tokenBytes = 32

// NonceTTLs sets how long each kind of token stays valid.
type NonceTTLs struct {
	CSRF   time.Duration
	Action time.Duration
}

// NonceStore implements ports.NonceStore.
// Keys are nonce:<kind>:<wallet>:<token>; expiry is left to Redis TTLs.
type NonceStore struct {
	client *goredis.Client
	prefix string
	ttls   NonceTTLs
}

// NewNonceStore creates a new Redis-backed nonce store.
func NewNonceStore(client *goredis.Client, ttls NonceTTLs) *NonceStore {
	return &NonceStore{
		client: client,
		prefix: "nonce:",
		ttls:   ttls,
	}
}

func (s *NonceStore) key(kind domain.NonceKind, walletAddress, token string) string {
	return s.prefix + string(kind) + ":" + walletAddress + ":" + token
}

func (s *NonceStore) ttl(kind domain.NonceKind) (time.Duration, error) {
	switch kind {
	case domain.NonceKindCSRF:
		return s.ttls.CSRF, nil
	case domain.NonceKindAction:
		return s.ttls.Action, nil
	default:
		return 0, fmt.Errorf("unknown nonce kind %q", kind)
	}
}

// Issue stores a new random token for the wallet. SET NX guards against
// overwriting a live token on the unlikely event of a collision.
func (s *NonceStore) Issue(ctx context.Context, walletAddress string, kind domain.NonceKind) (string, error) {
	ttl, err := s.ttl(kind)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < 2; attempt++ {
		token, err := randomToken()
		if err != nil {
			return "", err
		}

		ok, err := s.client.SetNX(ctx, s.key(kind, walletAddress, token), walletAddress, ttl).Result()
		if err != nil {
			return "", fmt.Errorf("redis nonce issue: %w", err)
		}
		if ok {
			return token, nil
		}
	}
	return "", errors.New("redis nonce issue: token collision")
}

// Consume deletes the token with a single GETDEL, so concurrent callers
// cannot both observe it.
func (s *NonceStore) Consume(ctx context.Context, walletAddress string, kind domain.NonceKind, token string) (bool, error) {
	if token == "" || walletAddress == "" {
		return false, nil
	}

	_, err := s.client.GetDel(ctx, s.key(kind, walletAddress, token)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis nonce consume: %w", err)
	}
	return true, nil
}

func randomToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
