package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solana-lottery/internal/core/domain"
	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/apperror"

	"github.com/rs/zerolog"
)

const vipReplayScope = "vip"

// VipConfig holds VIP pricing.
type VipConfig struct {
	CustodialAddress   string
	Lamports           uint64
	Duration           time.Duration
	NetworkFeeLamports uint64
}

func (c VipConfig) legs() []domain.TransferLeg {
	return []domain.TransferLeg{
		{Name: domain.LegEntry, Destination: c.CustodialAddress, Lamports: c.Lamports},
	}
}

// VipServiceImpl implements ports.VipService.
type VipServiceImpl struct {
	verifier transferVerifier
	builder  ports.TransactionBuilder
	vips     ports.VipRepository
	replay   ports.ReplayGuard
	cfg      VipConfig
	log      zerolog.Logger
	now      func() time.Time
}

// NewVipService creates a new VipServiceImpl.
func NewVipService(
	nonces ports.NonceStore,
	chain ports.ChainClient,
	builder ports.TransactionBuilder,
	vips ports.VipRepository,
	replay ports.ReplayGuard,
	cfg VipConfig,
	log zerolog.Logger,
) *VipServiceImpl {
	return &VipServiceImpl{
		verifier: transferVerifier{nonces: nonces, chain: chain},
		builder:  builder,
		vips:     vips,
		replay:   replay,
		cfg:      cfg,
		log:      log.With().Str("component", "vip").Logger(),
		now:      time.Now,
	}
}

// Status returns the stored entitlement and whether it is active now.
func (s *VipServiceImpl) Status(ctx context.Context, walletAddress string) (*domain.VipEntitlement, bool, error) {
	if err := validateWallet(walletAddress); err != nil {
		return nil, false, err
	}
	v, err := s.vips.Get(ctx, walletAddress)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("get vip entitlement: %w", err))
	}
	return v, v.ActiveAt(s.now()), nil
}

// Prepare returns an unsigned VIP payment transaction.
func (s *VipServiceImpl) Prepare(ctx context.Context, walletAddress string) (*ports.PreparedTransaction, error) {
	if err := validateWallet(walletAddress); err != nil {
		return nil, err
	}
	if err := checkPayerBalance(ctx, s.verifier.chain, walletAddress, s.cfg.Lamports, s.cfg.NetworkFeeLamports); err != nil {
		return nil, err
	}
	return prepareTransfer(ctx, s.verifier.nonces, s.verifier.chain, s.builder, walletAddress, s.cfg.legs())
}

// Activate verifies a VIP payment and grants the entitlement from now.
func (s *VipServiceImpl) Activate(ctx context.Context, req ports.SubmitRequest) (*domain.VipEntitlement, error) {
	if err := validateWallet(req.WalletAddress); err != nil {
		return nil, err
	}
	if req.Signature == "" {
		return nil, apperror.Validation("Missing transaction signature")
	}

	if err := s.verifier.consumeNonce(ctx, req); err != nil {
		return nil, err
	}
	if err := s.verifier.verify(ctx, req, s.cfg.legs()); err != nil {
		s.log.Warn().Err(err).
			Str("wallet", req.WalletAddress).
			Str("signature", req.Signature).
			Msg("vip payment rejected")
		return nil, err
	}

	// The marker only short-circuits recent replays; spent_signatures is durable.
	claimed, err := s.replay.Claim(ctx, vipReplayScope, req.Signature, 2*s.cfg.Duration)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("claim vip signature: %w", err))
	}
	if !claimed {
		return nil, apperror.ErrDuplicateDeposit()
	}

	now := s.now().UTC()
	entitlement := &domain.VipEntitlement{
		WalletAddress: req.WalletAddress,
		ActivatedAt:   now,
		ExpiresAt:     now.Add(s.cfg.Duration),
	}
	if err := s.vips.Activate(ctx, entitlement, req.Signature); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, apperror.ErrDuplicateDeposit()
		}
		if relErr := s.replay.Release(ctx, vipReplayScope, req.Signature); relErr != nil {
			s.log.Error().Err(relErr).Str("signature", req.Signature).Msg("failed to release vip signature")
		}
		return nil, apperror.InternalError(fmt.Errorf("upsert vip entitlement: %w", err))
	}

	s.log.Info().
		Str("wallet", req.WalletAddress).
		Str("signature", req.Signature).
		Time("expires_at", entitlement.ExpiresAt).
		Msg("vip activated")
	return entitlement, nil
}
