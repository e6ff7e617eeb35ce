package postgres

import (
	"context"
	"errors"
	"fmt"

	"solana-lottery/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WinnerRepo implements ports.WinnerRepository.
type WinnerRepo struct {
	pool Pool
}

// NewWinnerRepo creates a new WinnerRepo.
func NewWinnerRepo(pool Pool) *WinnerRepo {
	return &WinnerRepo{pool: pool}
}

// Create records a draw result.
func (r *WinnerRepo) Create(ctx context.Context, w *domain.Winner) error {
	query := `INSERT INTO winners (id, wallet_address, amount, payout_signature, drawn_at, confirmed)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.WalletAddress, w.Amount, w.PayoutSignature, w.DrawnAt, w.Confirmed,
	)
	if err != nil {
		return fmt.Errorf("insert winner: %w", mapUniqueViolation(err))
	}
	return nil
}

// Latest returns the most recent winner, or nil if no draw has paid out yet.
func (r *WinnerRepo) Latest(ctx context.Context) (*domain.Winner, error) {
	query := `SELECT id, wallet_address, amount, payout_signature, drawn_at, confirmed
		FROM winners ORDER BY drawn_at DESC LIMIT 1`

	w := &domain.Winner{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&w.ID, &w.WalletAddress, &w.Amount, &w.PayoutSignature, &w.DrawnAt, &w.Confirmed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest winner: %w", err)
	}
	return w, nil
}
