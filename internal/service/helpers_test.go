package service

import (
	"testing"

	"solana-lottery/internal/core/domain"
	"solana-lottery/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	walletA       = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
	walletB       = "SysvarRent111111111111111111111111111111111"
	custodialAddr = "CFLcvynnCrfQHcevyosen2yFp8qj59JPxjRww4MWPi28"
	feeAddr       = "So11111111111111111111111111111111111111112"
	testSig       = "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"
	testBlockhash = "EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N"
)

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

func transferTx(transfers ...domain.Instruction) *domain.ConfirmedTransaction {
	for i := range transfers {
		transfers[i].Kind = domain.InstructionTransfer
		transfers[i].ProgramID = "11111111111111111111111111111111"
	}
	return &domain.ConfirmedTransaction{Signature: testSig, Slot: 100, Instructions: transfers}
}
