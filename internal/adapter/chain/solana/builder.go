package solana

import (
	"encoding/base64"
	"errors"
	"fmt"

	"solana-lottery/internal/core/domain"

	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// Builder implements ports.TransactionBuilder.
type Builder struct{}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildTransfer serializes an unsigned transaction with one system transfer per leg.
// The payer is the fee payer and the source of every transfer.
func (b *Builder) BuildTransfer(payer string, legs []domain.TransferLeg, blockhash string) (string, error) {
	tx, err := buildTransfer(payer, legs, blockhash)
	if err != nil {
		return "", err
	}
	tx.Signatures = make([]sol.Signature, tx.Message.Header.NumRequiredSignatures)

	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("serialize transaction: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func buildTransfer(payer string, legs []domain.TransferLeg, blockhash string) (*sol.Transaction, error) {
	if len(legs) == 0 {
		return nil, errors.New("no transfer legs")
	}
	from, err := sol.PublicKeyFromBase58(payer)
	if err != nil {
		return nil, fmt.Errorf("invalid payer: %w", err)
	}
	hash, err := sol.HashFromBase58(blockhash)
	if err != nil {
		return nil, fmt.Errorf("invalid blockhash: %w", err)
	}

	instructions := make([]sol.Instruction, 0, len(legs))
	for _, leg := range legs {
		to, err := sol.PublicKeyFromBase58(leg.Destination)
		if err != nil {
			return nil, fmt.Errorf("invalid %s destination: %w", leg.Name, err)
		}
		instructions = append(instructions, system.NewTransferInstruction(leg.Lamports, from, to).Build())
	}

	tx, err := sol.NewTransaction(instructions, hash, sol.TransactionPayer(from))
	if err != nil {
		return nil, fmt.Errorf("build transaction: %w", err)
	}
	return tx, nil
}
