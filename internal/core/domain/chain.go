package domain

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL uint64 = 1_000_000_000

// Transfer leg names.
const (
	LegEntry = "entry"
	LegFee   = "fee"
)

// TransferLeg is one expected transfer of a prepared transaction.
type TransferLeg struct {
	Name        string
	Destination string
	Lamports    uint64
}

// InstructionKind classifies decoded instructions.
type InstructionKind string

const (
	InstructionTransfer InstructionKind = "transfer"
	InstructionOther    InstructionKind = "other"
)

// Instruction is a decoded top-level instruction.
// Source, Destination and Lamports are set for transfers only.
type Instruction struct {
	ProgramID   string
	Kind        InstructionKind
	Source      string
	Destination string
	Lamports    uint64
}

// ConfirmedTransaction is a transaction read back at confirmed commitment.
type ConfirmedTransaction struct {
	Signature    string
	Slot         uint64
	Failed       bool
	Instructions []Instruction
}

// Transfers returns the system transfers in instruction order.
func (t *ConfirmedTransaction) Transfers() []Instruction {
	var out []Instruction
	for _, in := range t.Instructions {
		if in.Kind == InstructionTransfer {
			out = append(out, in)
		}
	}
	return out
}

// ConfirmationStatus is the tri-state result of awaiting a submitted transaction.
type ConfirmationStatus string

const (
	ConfirmationConfirmed ConfirmationStatus = "confirmed"
	ConfirmationTimedOut  ConfirmationStatus = "timed_out" // may still land
	ConfirmationFailed    ConfirmationStatus = "failed"
)

// ValidateAddress checks that s is a base58 ed25519 public key.
func ValidateAddress(s string) error {
	if _, err := solana.PublicKeyFromBase58(s); err != nil {
		return fmt.Errorf("invalid address %q: %w", s, err)
	}
	return nil
}

// LamportsToSOL converts lamports to a SOL amount without float rounding.
func LamportsToSOL(lamports int64) decimal.Decimal {
	return decimal.New(lamports, -9)
}
