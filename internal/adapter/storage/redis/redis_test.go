package redis

import (
	"context"
	"strconv"
	"testing"

	"solana-lottery/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_ConnectsAndHealthChecks(t *testing.T) {
	s := miniredis.RunT(t)

	client, err := NewClient(context.Background(), config.RedisConfig{
		Host: s.Host(),
		Port: mustPort(t, s),
	}, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	hc := NewHealthCheck(client)
	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))

	s.Close()
	err = hc.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping")
}

func TestNewClient_LeavesNoKeysBehind(t *testing.T) {
	s := miniredis.RunT(t)

	client, err := NewClient(context.Background(), config.RedisConfig{Host: s.Host(), Port: mustPort(t, s)}, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	assert.False(t, s.Exists(getDelCheckKey))
	assert.Empty(t, s.Keys())
}

func TestNewClient_WrongPassword(t *testing.T) {
	s := miniredis.RunT(t)
	s.RequireAuth("lottery-secret")

	_, err := NewClient(context.Background(), config.RedisConfig{
		Host:     s.Host(),
		Port:     mustPort(t, s),
		Password: "wrong",
	}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pinging redis")
}

func TestNewClient_Unreachable(t *testing.T) {
	_, err := NewClient(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: 1}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

func mustPort(t *testing.T, s *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)
	return port
}
