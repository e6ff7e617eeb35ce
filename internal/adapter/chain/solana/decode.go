package solana

import (
	"fmt"

	"solana-lottery/internal/core/domain"

	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// decodeInstructions flattens the top-level instructions of tx.
// Anything that is not a system transfer is reported as InstructionOther.
func decodeInstructions(tx *sol.Transaction) ([]domain.Instruction, error) {
	out := make([]domain.Instruction, 0, len(tx.Message.Instructions))
	for i, inst := range tx.Message.Instructions {
		programID, err := tx.ResolveProgramIDIndex(inst.ProgramIDIndex)
		if err != nil {
			return nil, fmt.Errorf("resolve program of instruction %d: %w", i, err)
		}

		decoded := domain.Instruction{ProgramID: programID.String(), Kind: domain.InstructionOther}
		if programID.Equals(sol.SystemProgramID) {
			if transfer, ok := decodeTransfer(tx, inst); ok {
				decoded.Kind = domain.InstructionTransfer
				decoded.Source = transfer.GetFundingAccount().PublicKey.String()
				decoded.Destination = transfer.GetRecipientAccount().PublicKey.String()
				decoded.Lamports = *transfer.Lamports
			}
		}
		out = append(out, decoded)
	}
	return out, nil
}

func decodeTransfer(tx *sol.Transaction, inst sol.CompiledInstruction) (*system.Transfer, bool) {
	accounts, err := inst.ResolveInstructionAccounts(&tx.Message)
	if err != nil {
		return nil, false
	}
	ix, err := system.DecodeInstruction(accounts, inst.Data)
	if err != nil {
		return nil, false
	}
	transfer, ok := ix.Impl.(*system.Transfer)
	if !ok || transfer.Lamports == nil {
		return nil, false
	}
	if transfer.GetFundingAccount() == nil || transfer.GetRecipientAccount() == nil {
		return nil, false
	}
	return transfer, true
}
