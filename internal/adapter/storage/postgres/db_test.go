package postgres

import (
	"context"
	"testing"
	"time"

	"solana-lottery/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerDBConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     1,
		User:     "lottery",
		Password: "lottery",
		DBName:   "lottery",
		SSLMode:  "disable",
		MaxConns: 4,
	}
}

func TestNewPool_InvalidSSLMode(t *testing.T) {
	cfg := ledgerDBConfig()
	cfg.SSLMode = "sometimes"

	pool, err := NewPool(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "parsing database config")
}

func TestNewPool_UnreachableDatabase(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, ledgerDBConfig(), zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "pinging database")
}
