package service

import (
	"context"
	"fmt"
	"time"

	"solana-lottery/internal/core/domain"
	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/apperror"
)

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	deposits ports.DepositRepository
	winners  ports.WinnerRepository
	vips     ports.VipRepository
	counter  ports.DepositCounter
	dailyCap int64
	loc      *time.Location
	now      func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	deposits ports.DepositRepository,
	winners ports.WinnerRepository,
	vips ports.VipRepository,
	counter ports.DepositCounter,
	dailyCap int64,
	loc *time.Location,
) *LedgerServiceImpl {
	if loc == nil {
		loc = time.UTC
	}
	return &LedgerServiceImpl{
		deposits: deposits,
		winners:  winners,
		vips:     vips,
		counter:  counter,
		dailyCap: dailyCap,
		loc:      loc,
		now:      time.Now,
	}
}

// Pot returns the sum of outstanding deposits in lamports.
func (s *LedgerServiceImpl) Pot(ctx context.Context) (int64, error) {
	total, err := s.deposits.SumAmount(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("sum pot: %w", err))
	}
	return total, nil
}

// Participants returns one address per deposit. Repeat depositors appear repeatedly.
func (s *LedgerServiceImpl) Participants(ctx context.Context) ([]string, error) {
	deposits, err := s.deposits.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list deposits: %w", err))
	}
	out := make([]string, 0, len(deposits))
	for _, d := range deposits {
		out = append(out, d.WalletAddress)
	}
	return out, nil
}

// LatestWinner returns the most recent draw result, or nil.
func (s *LedgerServiceImpl) LatestWinner(ctx context.Context) (*domain.Winner, error) {
	w, err := s.winners.Latest(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("latest winner: %w", err))
	}
	return w, nil
}

// DepositCount reports today's usage against the cap.
func (s *LedgerServiceImpl) DepositCount(ctx context.Context, walletAddress string) (*ports.DepositAllowance, error) {
	if err := validateWallet(walletAddress); err != nil {
		return nil, err
	}

	now := s.now()
	count, err := s.counter.Count(ctx, walletAddress, now.In(s.loc))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read deposit count: %w", err))
	}
	vip, err := s.vips.Get(ctx, walletAddress)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read vip entitlement: %w", err))
	}

	return &ports.DepositAllowance{
		Count: count,
		Limit: s.dailyCap,
		IsVip: vip.ActiveAt(now),
	}, nil
}
