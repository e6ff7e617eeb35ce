package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"solana-lottery/internal/core/domain"
	"solana-lottery/internal/core/ports/mocks"
	"solana-lottery/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduler_NextRunInDrawTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	s, err := NewScheduler("0 21 * * *", loc, mocks.NewMockDrawService(ctrl), time.Minute, zerolog.Nop())
	require.NoError(t, err)

	// CET in March: 21:00 Amsterdam is 20:00 UTC.
	next := s.Next(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC), next.UTC())

	// CEST in July: 21:00 Amsterdam is 19:00 UTC.
	next = s.Next(time.Date(2026, 7, 1, 19, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 7, 2, 19, 0, 0, 0, time.UTC), next.UTC())
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := NewScheduler("every evening", time.UTC, mocks.NewMockDrawService(ctrl), time.Minute, zerolog.Nop())
	assert.Error(t, err)
}

func TestScheduler_TickRunsDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	draws := mocks.NewMockDrawService(ctrl)
	s, err := NewScheduler("0 21 * * *", time.UTC, draws, time.Minute, zerolog.Nop())
	require.NoError(t, err)

	draws.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.DrawResult, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return &domain.DrawResult{Outcome: domain.DrawOutcomePaid, Winner: &domain.Winner{WalletAddress: walletA}}, nil
	})
	s.tick()

	draws.EXPECT().Run(gomock.Any()).Return(nil, apperror.ErrDrawInProgress())
	s.tick()

	draws.EXPECT().Run(gomock.Any()).Return(nil, errors.New("boom"))
	s.tick()
}

func TestScheduler_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, err := NewScheduler("0 21 * * *", time.UTC, mocks.NewMockDrawService(ctrl), time.Minute, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
