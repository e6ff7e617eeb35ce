package service

import (
	"errors"

	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/apperror"
)

// chainError maps a chain adapter failure to the client-facing error class.
func chainError(err error) error {
	switch {
	case errors.Is(err, ports.ErrChainTimeout):
		return apperror.ErrChainTimeout(err)
	case errors.Is(err, ports.ErrInsufficientFunds):
		return apperror.ErrInsufficientFunds("Not enough SOL in wallet to cover the transfer and network fee")
	case errors.Is(err, ports.ErrBlockhashExpired):
		return apperror.ErrChainUnavailable(err).WithDetails(map[string]string{
			"hint": "transaction expired, prepare again",
		})
	default:
		return apperror.ErrChainUnavailable(err)
	}
}
