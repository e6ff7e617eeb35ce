package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deposit is a lottery entry credited after on-chain verification.
// One deposit is one entry in the draw.
type Deposit struct {
	ID            uuid.UUID `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Amount        int64     `json:"amount"` // lamports credited to the pot
	Signature     string    `json:"signature"`
	Nonce         string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// Pricing describes the transfers that make up a paid action.
type Pricing struct {
	CustodialAddress string
	EntryLamports    uint64
	FeeLamports      uint64
	FeeAddress       string // empty: fee is folded into the custodial transfer
}

// SplitFee reports whether the fee is paid to a separate address.
func (p Pricing) SplitFee() bool {
	return p.FeeAddress != "" && p.FeeLamports > 0
}

// Legs returns the transfers a client must sign for one entry.
func (p Pricing) Legs() []TransferLeg {
	if p.SplitFee() {
		return []TransferLeg{
			{Name: LegEntry, Destination: p.CustodialAddress, Lamports: p.EntryLamports},
			{Name: LegFee, Destination: p.FeeAddress, Lamports: p.FeeLamports},
		}
	}
	return []TransferLeg{
		{Name: LegEntry, Destination: p.CustodialAddress, Lamports: p.EntryLamports + p.FeeLamports},
	}
}

// TotalLamports is the sum a depositor pays before network fees.
func (p Pricing) TotalLamports() uint64 {
	return p.EntryLamports + p.FeeLamports
}
