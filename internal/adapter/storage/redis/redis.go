package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solana-lottery/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	clientName     = "solana-lottery"
	dialTimeout    = 5 * time.Second
	getDelCheckKey = "health:getdel-check"
)

// NewClient connects to Redis and checks that the server supports GETDEL,
// which single-use nonces depend on (Redis 6.2 or later).
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr(),
		Password:    cfg.Password,
		DB:          cfg.DB,
		ClientName:  clientName,
		DialTimeout: dialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	if err := client.GetDel(ctx, getDelCheckKey).Err(); err != nil && !errors.Is(err, goredis.Nil) {
		_ = client.Close()
		return nil, fmt.Errorf("redis at %s cannot serve nonces (GETDEL unsupported?): %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("client_name", clientName).
		Msg("Redis ready for nonces, rate limits and draw lock")

	return client, nil
}
