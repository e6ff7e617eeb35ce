package postgres

import (
	"context"
	"fmt"

	"solana-lottery/internal/core/domain"

	"github.com/google/uuid"
)

// DepositRepo implements ports.DepositRepository.
type DepositRepo struct {
	pool Pool
}

// NewDepositRepo creates a new DepositRepo.
func NewDepositRepo(pool Pool) *DepositRepo {
	return &DepositRepo{pool: pool}
}

// Create records the signature as spent and inserts the deposit in one statement.
// spent_signatures outlives the draw, so a settled signature stays rejected.
func (r *DepositRepo) Create(ctx context.Context, d *domain.Deposit) error {
	query := `WITH spent AS (
			INSERT INTO spent_signatures (signature, purpose, wallet_address, spent_at)
			VALUES ($4, 'deposit', $2, $6)
			RETURNING signature
		)
		INSERT INTO deposits (id, wallet_address, amount, signature, nonce, created_at)
		SELECT $1::uuid, $2::text, $3::bigint, spent.signature, $5::text, $6::timestamptz FROM spent`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.WalletAddress, d.Amount, d.Signature, d.Nonce, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deposit: %w", mapUniqueViolation(err))
	}
	return nil
}

// List returns all outstanding deposits, oldest first.
func (r *DepositRepo) List(ctx context.Context) ([]domain.Deposit, error) {
	query := `SELECT id, wallet_address, amount, signature, nonce, created_at
		FROM deposits ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list deposits: %w", err)
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		var d domain.Deposit
		if err := rows.Scan(&d.ID, &d.WalletAddress, &d.Amount, &d.Signature, &d.Nonce, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan deposit: %w", err)
		}
		deposits = append(deposits, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deposit rows: %w", err)
	}
	return deposits, nil
}

// SumAmount returns the current pot in lamports.
func (r *DepositRepo) SumAmount(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0)::BIGINT FROM deposits`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum deposits: %w", err)
	}
	return total, nil
}

// DeleteByIDs removes a snapshot of deposits and reports how many rows went.
func (r *DepositRepo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM deposits WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete deposits: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountByIDs reports how many of the given deposits are still stored.
func (r *DepositRepo) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM deposits WHERE id = ANY($1)`, ids).Scan(&n); err != nil {
		return 0, fmt.Errorf("count deposits: %w", err)
	}
	return n, nil
}
