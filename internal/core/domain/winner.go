package domain

import (
	"time"

	"github.com/google/uuid"
)

// Winner records one settled draw. Immutable once stored.
type Winner struct {
	ID              uuid.UUID `json:"id"`
	WalletAddress   string    `json:"wallet_address"`
	Amount          int64     `json:"amount"` // lamports paid out
	PayoutSignature string    `json:"payout_signature"`
	DrawnAt         time.Time `json:"drawn_at"`
	Confirmed       bool      `json:"confirmed"`
}
