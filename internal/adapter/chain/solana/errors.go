package solana

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"solana-lottery/internal/core/ports"
)

// translate maps an RPC failure onto the ports chain error classes.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", op, ports.ErrChainTimeout, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"), strings.Contains(msg, "insufficient lamports"):
		return fmt.Errorf("%s: %w: %v", op, ports.ErrInsufficientFunds, err)
	case strings.Contains(msg, "blockhash not found"):
		return fmt.Errorf("%s: %w: %v", op, ports.ErrBlockhashExpired, err)
	case strings.Contains(msg, "deadline exceeded"), strings.Contains(msg, "timeout"):
		return fmt.Errorf("%s: %w: %v", op, ports.ErrChainTimeout, err)
	default:
		return fmt.Errorf("%s: %w: %v", op, ports.ErrChainUnavailable, err)
	}
}
