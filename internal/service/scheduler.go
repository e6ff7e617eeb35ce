package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/apperror"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

// Scheduler triggers draw cycles on a cron schedule in a fixed time zone.
type Scheduler struct {
	cron    *cron.Cron
	entry   cron.EntryID
	draws   ports.DrawService
	timeout time.Duration
	log     zerolog.Logger
}

// NewScheduler registers the draw job. A tick that fires while the previous
// one is still running is skipped.
func NewScheduler(schedule string, loc *time.Location, draws ports.DrawService, timeout time.Duration, log zerolog.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	log = log.With().Str("component", "scheduler").Logger()
	cl := cronLogger{log: log}

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		draws:   draws,
		timeout: timeout,
		log:     log,
	}

	id, err := s.cron.AddFunc(schedule, s.tick)
	if err != nil {
		return nil, fmt.Errorf("invalid draw schedule %q: %w", schedule, err)
	}
	s.entry = id
	return s, nil
}

// Next returns the first scheduled run after t.
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.cron.Entry(s.entry).Schedule.Next(t)
}

// Run starts the scheduler and blocks until ctx is cancelled, then waits
// for a running draw to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	s.log.Info().Time("next_run", s.Next(time.Now())).Msg("draw scheduler started")

	<-ctx.Done()

	stopped := s.cron.Stop()
	<-stopped.Done()
	s.log.Info().Msg("draw scheduler stopped")
	return nil
}

func (s *Scheduler) tick() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.draws.Run(ctx)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == apperror.ErrDrawInProgress().Code {
			s.log.Warn().Msg("scheduled draw skipped, another draw is running")
			return
		}
		s.log.Error().Err(err).Msg("scheduled draw failed")
		return
	}

	ev := s.log.Info().Str("outcome", string(result.Outcome))
	if result.Winner != nil {
		ev = ev.Str("wallet", result.Winner.WalletAddress).Str("signature", result.Winner.PayoutSignature)
	}
	ev.Msg(result.Message())
}
