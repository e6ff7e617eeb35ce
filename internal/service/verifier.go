package service

import (
	"context"
	"fmt"

	"solana-lottery/internal/core/domain"
	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/apperror"
)

// transferVerifier checks a client-broadcast transaction against the
// transfers the server prepared. It never trusts client-reported amounts.
type transferVerifier struct {
	nonces ports.NonceStore
	chain  ports.ChainClient
}

// consumeNonce burns the action nonce. It runs before any chain read.
func (v *transferVerifier) consumeNonce(ctx context.Context, req ports.SubmitRequest) error {
	if req.Nonce == "" {
		return apperror.ErrInvalidOrExpiredToken()
	}
	ok, err := v.nonces.Consume(ctx, req.WalletAddress, domain.NonceKindAction, req.Nonce)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("consume nonce: %w", err))
	}
	if !ok {
		return apperror.ErrInvalidOrExpiredToken()
	}
	return nil
}

// verify fetches the transaction and matches each leg to its own transfer.
func (v *transferVerifier) verify(ctx context.Context, req ports.SubmitRequest, legs []domain.TransferLeg) error {
	tx, err := v.chain.FetchConfirmedTransaction(ctx, req.Signature)
	if err != nil {
		return chainError(err)
	}
	if tx == nil {
		return apperror.ErrTransactionNotFound()
	}
	if tx.Failed {
		return apperror.ErrTransactionFailed()
	}

	transfers := tx.Transfers()
	if len(transfers) == 0 {
		return apperror.ErrNoTransferFound()
	}
	if len(transfers) != len(legs) {
		return apperror.ErrAmountOrDestinationMismatch(apperror.AmountMismatch{
			Leg:                 legs[0].Name,
			ExpectedLamports:    legs[0].Lamports,
			ActualLamports:      transfers[0].Lamports,
			ExpectedDestination: legs[0].Destination,
			ActualDestination:   transfers[0].Destination,
		})
	}

	used := make([]bool, len(transfers))
	for _, leg := range legs {
		i := matchLeg(transfers, used, leg, req.WalletAddress)
		if i < 0 {
			got := closestTransfer(transfers, used, leg)
			return apperror.ErrAmountOrDestinationMismatch(apperror.AmountMismatch{
				Leg:                 leg.Name,
				ExpectedLamports:    leg.Lamports,
				ActualLamports:      got.Lamports,
				ExpectedDestination: leg.Destination,
				ActualDestination:   got.Destination,
			})
		}
		used[i] = true
	}
	return nil
}

// matchLeg returns the index of an unused transfer that pays leg from source,
// or -1. Transfers may appear in any order.
func matchLeg(transfers []domain.Instruction, used []bool, leg domain.TransferLeg, source string) int {
	for i, t := range transfers {
		if used[i] {
			continue
		}
		if t.Source == source && t.Destination == leg.Destination && t.Lamports == leg.Lamports {
			return i
		}
	}
	return -1
}

// closestTransfer picks the unused transfer to the leg's destination for error
// details, falling back to the first unused one.
func closestTransfer(transfers []domain.Instruction, used []bool, leg domain.TransferLeg) domain.Instruction {
	fallback := -1
	for i, t := range transfers {
		if used[i] {
			continue
		}
		if t.Destination == leg.Destination {
			return t
		}
		if fallback < 0 {
			fallback = i
		}
	}
	if fallback < 0 {
		return domain.Instruction{}
	}
	return transfers[fallback]
}

// prepareTransfer issues an action nonce and serializes legs for the wallet to sign.
func prepareTransfer(
	ctx context.Context,
	nonces ports.NonceStore,
	chain ports.ChainClient,
	builder ports.TransactionBuilder,
	walletAddress string,
	legs []domain.TransferLeg,
) (*ports.PreparedTransaction, error) {
	nonce, err := nonces.Issue(ctx, walletAddress, domain.NonceKindAction)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("issue nonce: %w", err))
	}

	blockhash, err := chain.GetLatestBlockhash(ctx)
	if err != nil {
		return nil, chainError(err)
	}

	serialized, err := builder.BuildTransfer(walletAddress, legs, blockhash)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build transfer: %w", err))
	}

	return &ports.PreparedTransaction{Nonce: nonce, SerializedTx: serialized}, nil
}

// checkPayerBalance rejects a prepare the wallet cannot afford.
func checkPayerBalance(ctx context.Context, chain ports.ChainClient, walletAddress string, total, networkFee uint64) error {
	balance, err := chain.GetBalance(ctx, walletAddress)
	if err != nil {
		return chainError(err)
	}
	if balance < total+networkFee {
		return apperror.ErrInsufficientFunds(fmt.Sprintf(
			"Not enough SOL: %s required, %s available",
			domain.LamportsToSOL(int64(total+networkFee)).String(),
			domain.LamportsToSOL(int64(balance)).String(),
		)).WithDetails(map[string]uint64{
			"requiredLamports":  total + networkFee,
			"availableLamports": balance,
		})
	}
	return nil
}

func validateWallet(walletAddress string) error {
	if err := domain.ValidateAddress(walletAddress); err != nil {
		return apperror.Validation("Invalid wallet address")
	}
	return nil
}
