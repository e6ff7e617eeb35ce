package ports

import (
	"context"
	"time"

	"solana-lottery/internal/core/domain"
)

// CSRFService mints and checks anti-forgery tokens.
type CSRFService interface {
	Issue(ctx context.Context) (string, error)
	Verify(ctx context.Context, token string) error
}

// PreparedTransaction is returned to a client to sign with its wallet.
type PreparedTransaction struct {
	Nonce        string
	SerializedTx string // base64
}

// SubmitRequest carries a signed, broadcast transaction back for verification.
type SubmitRequest struct {
	WalletAddress string
	Signature     string
	Nonce         string
}

// DepositService prepares and verifies lottery entries.
type DepositService interface {
	Prepare(ctx context.Context, walletAddress string) (*PreparedTransaction, error)
	Submit(ctx context.Context, req SubmitRequest) (*domain.Deposit, error)
}

// VipService manages time-boxed VIP entitlements.
type VipService interface {
	Status(ctx context.Context, walletAddress string) (*domain.VipEntitlement, bool, error)
	Prepare(ctx context.Context, walletAddress string) (*PreparedTransaction, error)
	Activate(ctx context.Context, req SubmitRequest) (*domain.VipEntitlement, error)
}

// DepositAllowance is today's deposit usage for a wallet.
type DepositAllowance struct {
	Count int64
	Limit int64
	IsVip bool
}

// LedgerService is the read side of the pot.
type LedgerService interface {
	Pot(ctx context.Context) (int64, error)
	Participants(ctx context.Context) ([]string, error)
	LatestWinner(ctx context.Context) (*domain.Winner, error)
	DepositCount(ctx context.Context, walletAddress string) (*DepositAllowance, error)
}

// DrawService runs draw cycles.
type DrawService interface {
	Run(ctx context.Context) (*domain.DrawResult, error)
	State() domain.DrawState
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenClaims holds the parsed operator token claims.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// OperatorAuthService authenticates the lottery operator.
type OperatorAuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
