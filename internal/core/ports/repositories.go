package ports

import (
	"context"
	"errors"

	"solana-lottery/internal/core/domain"

	"github.com/google/uuid"
)

// ErrDuplicate is returned when a unique constraint rejects an insert.
var ErrDuplicate = errors.New("duplicate record")

// DepositRepository handles persistence of verified deposits.
type DepositRepository interface {
	// Create inserts a deposit and marks its signature spent for good.
	// A signature spent before, even by a drawn deposit, yields ErrDuplicate.
	Create(ctx context.Context, d *domain.Deposit) error
	// List returns every outstanding deposit in insertion order.
	List(ctx context.Context) ([]domain.Deposit, error)
	// SumAmount returns the pot in lamports.
	SumAmount(ctx context.Context) (int64, error)
	// DeleteByIDs removes the given deposits and returns how many were deleted.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	// CountByIDs returns how many of the given deposits still exist.
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// WinnerRepository handles persistence of draw results.
type WinnerRepository interface {
	Create(ctx context.Context, w *domain.Winner) error
	// Latest returns the most recent winner, or nil when none exists.
	Latest(ctx context.Context) (*domain.Winner, error)
}

// VipRepository handles persistence of VIP entitlements.
type VipRepository interface {
	// Activate marks paymentSignature spent and stores v. A signature
	// spent before yields ErrDuplicate.
	Activate(ctx context.Context, v *domain.VipEntitlement, paymentSignature string) error
	// Get returns the entitlement for a wallet, or nil when none exists.
	Get(ctx context.Context, walletAddress string) (*domain.VipEntitlement, error)
}
