package postgres

import (
	"context"
	"errors"
	"fmt"
)

// errSchemaMissing means the database answers but `lottery migrate` has not run.
var errSchemaMissing = errors.New("lottery schema not migrated")

// HealthCheck reports whether the deposit ledger is reachable and migrated.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity, then that the tables deposits and replays rely on exist.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}

	var migrated bool
	err := h.pool.QueryRow(ctx,
		`SELECT to_regclass('deposits') IS NOT NULL AND to_regclass('spent_signatures') IS NOT NULL`,
	).Scan(&migrated)
	if err != nil {
		return fmt.Errorf("postgres schema check: %w", err)
	}
	if !migrated {
		return errSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
