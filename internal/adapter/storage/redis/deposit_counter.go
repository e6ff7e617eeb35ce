package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// dayRetention keeps a day's counter around long enough to cover any time zone.
const dayRetention = 48 * time.Hour

// DepositCounter implements ports.DepositCounter with one INCR key per wallet per day.
type DepositCounter struct {
	client *goredis.Client
	prefix string
}

// NewDepositCounter creates a new Redis-backed daily deposit counter.
func NewDepositCounter(client *goredis.Client) *DepositCounter {
	return &DepositCounter{
		client: client,
		prefix: "deposits:daily:",
	}
}

// key uses the calendar date of day in its own location.
func (c *DepositCounter) key(walletAddress string, day time.Time) string {
	return c.prefix + walletAddress + ":" + day.Format(time.DateOnly)
}

// Increment records one more deposit for the wallet on day.
func (c *DepositCounter) Increment(ctx context.Context, walletAddress string, day time.Time) (int64, error) {
	key := c.key(walletAddress, day)

	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis deposit counter incr: %w", err)
	}
	if count == 1 {
		if err := c.client.Expire(ctx, key, dayRetention).Err(); err != nil {
			return count, fmt.Errorf("redis deposit counter expire: %w", err)
		}
	}
	return count, nil
}

// Count returns the deposits recorded for the wallet on day.
func (c *DepositCounter) Count(ctx context.Context, walletAddress string, day time.Time) (int64, error) {
	count, err := c.client.Get(ctx, c.key(walletAddress, day)).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis deposit counter get: %w", err)
	}
	return count, nil
}
