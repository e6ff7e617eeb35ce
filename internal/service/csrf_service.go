package service

import (
	"context"
	"fmt"

	"solana-lottery/internal/core/domain"
	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/apperror"
)

// CSRFServiceImpl implements ports.CSRFService on top of the nonce store.
// Every token is bound to the shared csrf-token pseudo-wallet.
type CSRFServiceImpl struct {
	nonces ports.NonceStore
}

// NewCSRFService creates a new CSRFServiceImpl.
func NewCSRFService(nonces ports.NonceStore) *CSRFServiceImpl {
	return &CSRFServiceImpl{nonces: nonces}
}

// Issue mints a single-use CSRF token.
func (s *CSRFServiceImpl) Issue(ctx context.Context) (string, error) {
	token, err := s.nonces.Issue(ctx, domain.CSRFWallet, domain.NonceKindCSRF)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("issue csrf token: %w", err))
	}
	return token, nil
}

// Verify consumes token. A reused, expired or unknown token is Forbidden.
func (s *CSRFServiceImpl) Verify(ctx context.Context, token string) error {
	if token == "" {
		return apperror.ErrForbiddenCSRF()
	}
	ok, err := s.nonces.Consume(ctx, domain.CSRFWallet, domain.NonceKindCSRF, token)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("consume csrf token: %w", err))
	}
	if !ok {
		return apperror.ErrForbiddenCSRF()
	}
	return nil
}
