package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/apperror"

	"github.com/rs/zerolog"
)

// OperatorAuthServiceImpl implements ports.OperatorAuthService for the
// single configured operator account.
type OperatorAuthServiceImpl struct {
	username     string
	passwordHash string
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
	log          zerolog.Logger
}

// NewOperatorAuthService creates a new OperatorAuthServiceImpl.
func NewOperatorAuthService(
	username, passwordHash string,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *OperatorAuthServiceImpl {
	return &OperatorAuthServiceImpl{
		username:     username,
		passwordHash: passwordHash,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
		log:          log.With().Str("component", "operator_auth").Logger(),
	}
}

// Login checks the operator credentials and returns a bearer token.
func (s *OperatorAuthServiceImpl) Login(_ context.Context, username, password string) (string, time.Time, error) {
	if s.passwordHash == "" {
		s.log.Warn().Msg("operator login attempted but no password hash is configured")
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK, err := s.hashSvc.Verify(password, s.passwordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !userOK || !passOK {
		s.log.Warn().Str("username", username).Msg("operator login failed")
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiresAt, err := s.tokenSvc.Generate(username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiresAt, nil
}
