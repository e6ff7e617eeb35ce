package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solana-lottery/internal/core/domain"
	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DepositConfig holds the pricing and cap used by DepositServiceImpl.
type DepositConfig struct {
	Pricing            domain.Pricing
	DailyCap           int64
	NetworkFeeLamports uint64
	Location           *time.Location // calendar day for the cap
}

// DepositServiceImpl implements ports.DepositService.
type DepositServiceImpl struct {
	verifier transferVerifier
	builder  ports.TransactionBuilder
	deposits ports.DepositRepository
	vips     ports.VipRepository
	counter  ports.DepositCounter
	cfg      DepositConfig
	log      zerolog.Logger
	now      func() time.Time
}

// NewDepositService creates a new DepositServiceImpl.
func NewDepositService(
	nonces ports.NonceStore,
	chain ports.ChainClient,
	builder ports.TransactionBuilder,
	deposits ports.DepositRepository,
	vips ports.VipRepository,
	counter ports.DepositCounter,
	cfg DepositConfig,
	log zerolog.Logger,
) *DepositServiceImpl {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &DepositServiceImpl{
		verifier: transferVerifier{nonces: nonces, chain: chain},
		builder:  builder,
		deposits: deposits,
		vips:     vips,
		counter:  counter,
		cfg:      cfg,
		log:      log.With().Str("component", "deposit").Logger(),
		now:      time.Now,
	}
}

// Prepare returns an unsigned entry transaction for walletAddress.
// The daily cap is checked here, before any funds move.
func (s *DepositServiceImpl) Prepare(ctx context.Context, walletAddress string) (*ports.PreparedTransaction, error) {
	if err := validateWallet(walletAddress); err != nil {
		return nil, err
	}

	if err := s.checkDailyCap(ctx, walletAddress); err != nil {
		return nil, err
	}

	if err := checkPayerBalance(ctx, s.verifier.chain, walletAddress, s.cfg.Pricing.TotalLamports(), s.cfg.NetworkFeeLamports); err != nil {
		return nil, err
	}

	prepared, err := prepareTransfer(ctx, s.verifier.nonces, s.verifier.chain, s.builder, walletAddress, s.cfg.Pricing.Legs())
	if err != nil {
		return nil, err
	}

	s.log.Debug().Str("wallet", walletAddress).Msg("deposit prepared")
	return prepared, nil
}

func (s *DepositServiceImpl) checkDailyCap(ctx context.Context, walletAddress string) error {
	if s.cfg.DailyCap <= 0 {
		return nil
	}

	now := s.now()
	count, err := s.counter.Count(ctx, walletAddress, now.In(s.cfg.Location))
	if err != nil {
		return apperror.InternalError(fmt.Errorf("read deposit count: %w", err))
	}
	if count < s.cfg.DailyCap {
		return nil
	}

	vip, err := s.vips.Get(ctx, walletAddress)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("read vip entitlement: %w", err))
	}
	if vip.ActiveAt(now) {
		return nil
	}
	return apperror.ErrDepositLimitReached(s.cfg.DailyCap)
}

// Submit verifies a broadcast entry transaction and credits one deposit.
func (s *DepositServiceImpl) Submit(ctx context.Context, req ports.SubmitRequest) (*domain.Deposit, error) {
	if err := validateWallet(req.WalletAddress); err != nil {
		return nil, err
	}
	if req.Signature == "" {
		return nil, apperror.Validation("Missing transaction signature")
	}

	if err := s.verifier.consumeNonce(ctx, req); err != nil {
		return nil, err
	}

	if err := s.verifier.verify(ctx, req, s.cfg.Pricing.Legs()); err != nil {
		s.log.Warn().Err(err).
			Str("wallet", req.WalletAddress).
			Str("signature", req.Signature).
			Msg("deposit rejected")
		return nil, err
	}

	now := s.now()
	deposit := &domain.Deposit{
		ID:            uuid.New(),
		WalletAddress: req.WalletAddress,
		Amount:        int64(s.cfg.Pricing.EntryLamports),
		Signature:     req.Signature,
		Nonce:         req.Nonce,
		CreatedAt:     now.UTC(),
	}

	if err := s.deposits.Create(ctx, deposit); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, apperror.ErrDuplicateDeposit()
		}
		return nil, apperror.InternalError(fmt.Errorf("create deposit: %w", err))
	}

	if _, err := s.counter.Increment(ctx, req.WalletAddress, now.In(s.cfg.Location)); err != nil {
		// The deposit is already credited; a missed increment only loosens the cap.
		s.log.Error().Err(err).Str("wallet", req.WalletAddress).Msg("failed to increment daily deposit count")
	}

	s.log.Info().
		Str("wallet", req.WalletAddress).
		Str("signature", req.Signature).
		Int64("lamports", deposit.Amount).
		Msg("deposit recorded")

	return deposit, nil
}
