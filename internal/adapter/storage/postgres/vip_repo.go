package postgres

import (
	"context"
	"errors"
	"fmt"

	"solana-lottery/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// VipRepo implements ports.VipRepository.
type VipRepo struct {
	pool Pool
}

// NewVipRepo creates a new VipRepo.
func NewVipRepo(pool Pool) *VipRepo {
	return &VipRepo{pool: pool}
}

// Activate spends paymentSignature and activates or renews the wallet's
// entitlement in one statement. A signature spent before yields ports.ErrDuplicate.
func (r *VipRepo) Activate(ctx context.Context, v *domain.VipEntitlement, paymentSignature string) error {
	query := `WITH spent AS (
			INSERT INTO spent_signatures (signature, purpose, wallet_address, spent_at)
			VALUES ($4, 'vip', $1, $2)
			RETURNING wallet_address
		)
		INSERT INTO vip_entitlements (wallet_address, activated_at, expires_at)
		SELECT spent.wallet_address, $2::timestamptz, $3::timestamptz FROM spent
		ON CONFLICT (wallet_address) DO UPDATE
		SET activated_at = EXCLUDED.activated_at, expires_at = EXCLUDED.expires_at`

	if _, err := r.pool.Exec(ctx, query, v.WalletAddress, v.ActivatedAt, v.ExpiresAt, paymentSignature); err != nil {
		return fmt.Errorf("activate vip entitlement: %w", mapUniqueViolation(err))
	}
	return nil
}

// Get returns the stored entitlement, expired or not, or nil when none exists.
func (r *VipRepo) Get(ctx context.Context, walletAddress string) (*domain.VipEntitlement, error) {
	query := `SELECT wallet_address, activated_at, expires_at
		FROM vip_entitlements WHERE wallet_address = $1`

	v := &domain.VipEntitlement{}
	err := r.pool.QueryRow(ctx, query, walletAddress).Scan(&v.WalletAddress, &v.ActivatedAt, &v.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vip entitlement: %w", err)
	}
	return v, nil
}
