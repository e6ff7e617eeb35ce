package postgres

import (
	"errors"

	"solana-lottery/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// mapUniqueViolation turns a unique constraint failure into ports.ErrDuplicate.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ports.ErrDuplicate
	}
	return err
}
