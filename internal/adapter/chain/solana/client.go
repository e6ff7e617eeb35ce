package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solana-lottery/config"
	"solana-lottery/internal/core/domain"

	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
)

// Client implements ports.ChainClient over Solana JSON-RPC.
type Client struct {
	rpc            *rpc.Client
	requestTimeout time.Duration
	pollInterval   time.Duration
	log            zerolog.Logger
}

// NewClient creates a Client for cfg.RPCURL.
func NewClient(cfg config.ChainConfig, log zerolog.Logger) *Client {
	poll := cfg.ConfirmPollInterval
	if poll <= 0 {
		poll = 2 * time.Second
	}
	return &Client{
		rpc:            rpc.New(cfg.RPCURL),
		requestTimeout: cfg.RequestTimeout,
		pollInterval:   poll,
		log:            log,
	}
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.requestTimeout)
}

// GetBalance returns the balance of address in lamports at confirmed commitment.
func (c *Client) GetBalance(ctx context.Context, address string) (uint64, error) {
	pk, err := sol.PublicKeyFromBase58(address)
	if err != nil {
		return 0, fmt.Errorf("invalid address: %w", err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	out, err := c.rpc.GetBalance(ctx, pk, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, translate("get balance", err)
	}
	return out.Value, nil
}

// GetLatestBlockhash returns a finalized recent blockhash.
func (c *Client) GetLatestBlockhash(ctx context.Context) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	out, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return "", translate("get latest blockhash", err)
	}
	return out.Value.Blockhash.String(), nil
}

// SubmitTransaction broadcasts signedTx with confirmed preflight.
func (c *Client) SubmitTransaction(ctx context.Context, signedTx []byte) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	sig, err := c.rpc.SendRawTransactionWithOpts(ctx, signedTx, rpc.TransactionOpts{
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return "", translate("send transaction", err)
	}
	return sig.String(), nil
}

// ConfirmTransaction polls the signature status until it reaches confirmed,
// reports an error, or timeout elapses. A timeout is not an error.
// timeout bounds the whole call, including a status request in flight.
func (c *Client) ConfirmTransaction(ctx context.Context, signature string, timeout time.Duration) (domain.ConfirmationStatus, error) {
	sig, err := sol.SignatureFromBase58(signature)
	if err != nil {
		return "", fmt.Errorf("invalid signature: %w", err)
	}

	pollCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		status, err := c.signatureStatus(pollCtx, sig)
		if err == nil && status != "" {
			return status, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if pollCtx.Err() != nil {
			return domain.ConfirmationTimedOut, nil
		}
		if err != nil {
			c.log.Warn().Err(err).Str("signature", signature).Msg("signature status poll failed")
		}

		select {
		case <-pollCtx.Done():
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return domain.ConfirmationTimedOut, nil
		case <-ticker.C:
		}
	}
}

// signatureStatus returns "" while the transaction is still pending.
func (c *Client) signatureStatus(ctx context.Context, sig sol.Signature) (domain.ConfirmationStatus, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	out, err := c.rpc.GetSignatureStatuses(ctx, false, sig)
	if err != nil {
		return "", translate("get signature status", err)
	}
	if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		return "", nil
	}

	st := out.Value[0]
	if st.Err != nil {
		return domain.ConfirmationFailed, nil
	}
	switch st.ConfirmationStatus {
	case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
		return domain.ConfirmationConfirmed, nil
	}
	return "", nil
}

// FetchConfirmedTransaction loads and decodes a transaction at confirmed commitment.
func (c *Client) FetchConfirmedTransaction(ctx context.Context, signature string) (*domain.ConfirmedTransaction, error) {
	sig, err := sol.SignatureFromBase58(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid signature: %w", err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	maxVersion := uint64(0)
	out, err := c.rpc.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Encoding:                       sol.EncodingBase64,
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		return nil, translate("get transaction", err)
	}
	if out == nil || out.Transaction == nil {
		return nil, nil
	}

	tx, err := out.Transaction.GetTransaction()
	if err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	instructions, err := decodeInstructions(tx)
	if err != nil {
		return nil, err
	}

	return &domain.ConfirmedTransaction{
		Signature:    signature,
		Slot:         out.Slot,
		Failed:       out.Meta != nil && out.Meta.Err != nil,
		Instructions: instructions,
	}, nil
}

// HealthCheck implements ports.HealthChecker for the RPC node.
type HealthCheck struct {
	client *Client
}

// NewHealthCheck creates a Solana RPC health checker.
func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping calls getHealth on the node.
func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := h.client.withTimeout(ctx)
	defer cancel()

	status, err := h.client.rpc.GetHealth(ctx)
	if err != nil {
		return translate("get health", err)
	}
	if status != "ok" {
		return fmt.Errorf("node reports %q", status)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "solana-rpc"
}
