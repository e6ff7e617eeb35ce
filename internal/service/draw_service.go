package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"solana-lottery/internal/core/domain"
	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DrawConfig tunes a draw cycle.
type DrawConfig struct {
	NetworkFeeLamports uint64
	ConfirmTimeout     time.Duration
	LockTTL            time.Duration
}

// DrawEngine implements ports.DrawService.
//
// A cycle pays the whole pot to one entry picked uniformly from the
// deposit snapshot. Payout is submitted before the winner is stored, and
// deposits are deleted only after the winner row exists. A failure after
// submission is reported as PartialDrawFailure and leaves deposits in place.
type DrawEngine struct {
	deposits ports.DepositRepository
	winners  ports.WinnerRepository
	chain    ports.ChainClient
	wallet   ports.CustodialWallet
	lock     ports.DrawLock
	picker   Picker
	cfg      DrawConfig
	log      zerolog.Logger
	now      func() time.Time

	state atomic.Int32
}

// NewDrawEngine creates a new DrawEngine.
func NewDrawEngine(
	deposits ports.DepositRepository,
	winners ports.WinnerRepository,
	chain ports.ChainClient,
	wallet ports.CustodialWallet,
	lock ports.DrawLock,
	picker Picker,
	cfg DrawConfig,
	log zerolog.Logger,
) *DrawEngine {
	if picker == nil {
		picker = CryptoPicker{}
	}
	return &DrawEngine{
		deposits: deposits,
		winners:  winners,
		chain:    chain,
		wallet:   wallet,
		lock:     lock,
		picker:   picker,
		cfg:      cfg,
		log:      log.With().Str("component", "draw").Logger(),
		now:      time.Now,
	}
}

// State returns the current step of the running cycle, or Idle.
func (e *DrawEngine) State() domain.DrawState {
	return domain.DrawState(e.state.Load())
}

func (e *DrawEngine) setState(s domain.DrawState) {
	e.state.Store(int32(s))
	e.log.Debug().Str("draw_state", s.String()).Msg("draw state changed")
}

// Run executes one draw cycle. Overlapping calls get DrawInProgress.
func (e *DrawEngine) Run(ctx context.Context) (*domain.DrawResult, error) {
	if !e.state.CompareAndSwap(int32(domain.DrawStateIdle), int32(domain.DrawStateParticipantsLoaded)) {
		return nil, apperror.ErrDrawInProgress()
	}
	defer e.setState(domain.DrawStateIdle)

	token, err := e.lock.Acquire(ctx, e.cfg.LockTTL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("acquire draw lock: %w", err))
	}
	if token == "" {
		return nil, apperror.ErrDrawInProgress()
	}
	defer func() {
		if err := e.lock.Release(context.WithoutCancel(ctx), token); err != nil {
			e.log.Error().Err(err).Msg("failed to release draw lock")
		}
	}()

	result, err := e.run(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("draw cycle aborted")
		return nil, err
	}
	return result, nil
}

func (e *DrawEngine) run(ctx context.Context) (*domain.DrawResult, error) {
	snapshot, err := e.deposits.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load participants: %w", err))
	}
	if len(snapshot) == 0 {
		e.log.Info().Msg("draw skipped, no participants")
		return &domain.DrawResult{Outcome: domain.DrawOutcomeNoParticipants}, nil
	}

	var pot int64
	ids := make([]uuid.UUID, len(snapshot))
	for i, d := range snapshot {
		pot += d.Amount
		ids[i] = d.ID
	}
	if pot <= 0 {
		e.log.Warn().Int64("lamports", pot).Int("entries", len(snapshot)).Msg("draw skipped, no pot")
		return &domain.DrawResult{Outcome: domain.DrawOutcomeNoPot}, nil
	}

	idx, err := e.picker.Pick(len(snapshot))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("pick winner: %w", err))
	}
	winnerAddress := snapshot[idx].WalletAddress
	e.setState(domain.DrawStateWinnerSelected)

	if err := domain.ValidateAddress(winnerAddress); err != nil {
		return nil, apperror.ErrInvalidWinnerAddress(err)
	}

	if err := e.checkCustodialBalance(ctx, uint64(pot)); err != nil {
		return nil, err
	}

	signature, err := e.submitPayout(ctx, winnerAddress, uint64(pot))
	if err != nil {
		return nil, err
	}
	e.setState(domain.DrawStatePayoutSubmitted)

	log := e.log.With().
		Str("wallet", winnerAddress).
		Str("signature", signature).
		Int64("lamports", pot).
		Logger()
	log.Info().Msg("payout submitted")

	// Funds may be moving: finish the cycle even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	confirmed, err := e.awaitPayout(ctx, signature, log)
	if err != nil {
		return nil, err
	}

	winner := &domain.Winner{
		ID:              uuid.New(),
		WalletAddress:   winnerAddress,
		Amount:          pot,
		PayoutSignature: signature,
		DrawnAt:         e.now().UTC(),
		Confirmed:       confirmed,
	}
	if err := e.winners.Create(ctx, winner); err != nil {
		log.Error().Err(err).Msg("payout sent but winner not recorded")
		return nil, apperror.ErrPartialDrawFailure(fmt.Errorf("record winner for payout %s: %w", signature, err))
	}
	e.setState(domain.DrawStateWinnerRecorded)

	cleared, err := e.clear(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("winner recorded but deposits not cleared")
		return nil, apperror.ErrPartialDrawFailure(fmt.Errorf("clear deposits after payout %s: %w", signature, err))
	}
	e.setState(domain.DrawStateDepositsCleared)

	log.Info().Bool("confirmed", confirmed).Int64("cleared", cleared).Msg("draw completed")
	return &domain.DrawResult{Outcome: domain.DrawOutcomePaid, Winner: winner, Cleared: cleared}, nil
}

func (e *DrawEngine) checkCustodialBalance(ctx context.Context, pot uint64) error {
	balance, err := e.chain.GetBalance(ctx, e.wallet.Address())
	if err != nil {
		return chainError(err)
	}
	required := pot + e.cfg.NetworkFeeLamports
	if balance < required {
		return apperror.ErrInsufficientCustodialBalance(
			fmt.Errorf("balance %d lamports, need %d", balance, required),
		)
	}
	return nil
}

func (e *DrawEngine) submitPayout(ctx context.Context, to string, lamports uint64) (string, error) {
	blockhash, err := e.chain.GetLatestBlockhash(ctx)
	if err != nil {
		return "", chainError(err)
	}

	signed, err := e.wallet.SignTransfer(to, lamports, blockhash)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("sign payout: %w", err))
	}

	signature, err := e.chain.SubmitTransaction(ctx, signed)
	if err != nil {
		if errors.Is(err, ports.ErrInsufficientFunds) {
			return "", apperror.ErrInsufficientCustodialBalance(err)
		}
		return "", apperror.ErrPayoutFailed(err)
	}
	return signature, nil
}

// awaitPayout reports whether the payout confirmed in time. A payout that
// failed on chain aborts the cycle: nothing was paid, so nothing is cleared.
func (e *DrawEngine) awaitPayout(ctx context.Context, signature string, log zerolog.Logger) (bool, error) {
	status, err := e.chain.ConfirmTransaction(ctx, signature, e.cfg.ConfirmTimeout)
	if err != nil {
		log.Warn().Err(err).Msg("payout confirmation errored, recording as unconfirmed")
		status = domain.ConfirmationTimedOut
	}

	switch status {
	case domain.ConfirmationConfirmed:
		e.setState(domain.DrawStatePayoutConfirmed)
		return true, nil
	case domain.ConfirmationFailed:
		log.Error().Msg("payout transaction failed on chain")
		return false, apperror.ErrPayoutFailed(fmt.Errorf("payout %s failed on chain", signature))
	default:
		e.setState(domain.DrawStatePayoutTimedOut)
		log.Warn().Dur("timeout", e.cfg.ConfirmTimeout).Msg("payout not confirmed in time, verify out of band")
		return false, nil
	}
}

// clear deletes exactly the snapshot and verifies none of it remains.
func (e *DrawEngine) clear(ctx context.Context, ids []uuid.UUID) (int64, error) {
	deleted, err := e.deposits.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	if deleted != int64(len(ids)) {
		return deleted, fmt.Errorf("deleted %d of %d snapshot deposits", deleted, len(ids))
	}

	remaining, err := e.deposits.CountByIDs(ctx, ids)
	if err != nil {
		return deleted, err
	}
	if remaining != 0 {
		return deleted, fmt.Errorf("%d snapshot deposits remain after delete", remaining)
	}
	return deleted, nil
}
