package ports

import (
	"context"
	"errors"
	"time"

	"solana-lottery/internal/core/domain"
)

// Chain error classes. Adapters wrap RPC failures with one of these.
var (
	ErrChainUnavailable  = errors.New("chain unavailable")
	ErrChainTimeout      = errors.New("chain request timed out")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBlockhashExpired  = errors.New("blockhash expired")
)

// ChainClient wraps the RPC calls the lottery needs.
type ChainClient interface {
	GetBalance(ctx context.Context, address string) (uint64, error)
	GetLatestBlockhash(ctx context.Context) (string, error)
	// SubmitTransaction broadcasts a signed transaction. It does not wait for confirmation.
	SubmitTransaction(ctx context.Context, signedTx []byte) (string, error)
	// ConfirmTransaction polls until the transaction is confirmed, fails, or timeout elapses.
	ConfirmTransaction(ctx context.Context, signature string, timeout time.Duration) (domain.ConfirmationStatus, error)
	// FetchConfirmedTransaction returns nil, nil when the transaction is not visible yet.
	FetchConfirmedTransaction(ctx context.Context, signature string) (*domain.ConfirmedTransaction, error)
}

// TransactionBuilder serializes unsigned transfer transactions for clients to sign.
type TransactionBuilder interface {
	// BuildTransfer returns the base64 wire encoding with empty signature slots.
	BuildTransfer(payer string, legs []domain.TransferLeg, blockhash string) (string, error)
}

// CustodialWallet holds the payout key. Only the draw engine signs with it.
type CustodialWallet interface {
	Address() string
	SignTransfer(to string, lamports uint64, blockhash string) ([]byte, error)
}
