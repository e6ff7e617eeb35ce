package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletRequest is the body of the prepare endpoints.
type WalletRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required,solana_address"`
}

// WalletQuery is the query string of the per-wallet read endpoints.
type WalletQuery struct {
	WalletAddress string `form:"walletAddress" binding:"required,solana_address"`
}

// SubmitRequest is the body of the submit endpoints.
type SubmitRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required,solana_address"`
	Signature     string `json:"signature" binding:"required,solana_signature"`
	Nonce         string `json:"nonce" binding:"required,hexadecimal,len=64"`
}

// CSRFTokenResponse carries a fresh single-use CSRF token.
type CSRFTokenResponse struct {
	CSRFToken string `json:"csrfToken"`
}

// PotResponse reports the current pot.
type PotResponse struct {
	Pot         decimal.Decimal `json:"pot"` // SOL
	PotLamports int64           `json:"potLamports"`
}

// ParticipantsResponse lists one address per entry.
type ParticipantsResponse struct {
	Participants []string `json:"participants"`
}

// LatestWinnerResponse describes the most recent draw. Winner is null
// before the first draw.
type LatestWinnerResponse struct {
	Winner          *string          `json:"winner"`
	Amount          *decimal.Decimal `json:"amount,omitempty"` // SOL
	AmountLamports  int64            `json:"amountLamports,omitempty"`
	DrawnAt         *time.Time       `json:"drawnAt,omitempty"`
	PayoutSignature string           `json:"payoutSignature,omitempty"`
	Confirmed       *bool            `json:"confirmed,omitempty"`
}

// DepositCountResponse reports today's deposits against the cap.
type DepositCountResponse struct {
	Count int64 `json:"count"`
	Limit int64 `json:"limit"`
	IsVip bool  `json:"isVip"`
}

// VipStatusResponse reports a wallet's VIP state.
type VipStatusResponse struct {
	IsVip     bool       `json:"isVip"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// PreparedTransactionResponse is an unsigned transaction for the wallet to sign.
type PreparedTransactionResponse struct {
	Nonce        string `json:"nonce"`
	SerializedTx string `json:"serializedTx"` // base64
}

// SubmitDepositResponse confirms a credited entry.
type SubmitDepositResponse struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// SubmitVipResponse confirms an activated entitlement.
type SubmitVipResponse struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LoginRequest is the operator login body.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=256"`
}

// LoginResponse carries an operator bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"` // Unix timestamp
}

// DrawResponse reports the outcome of an operator-triggered draw.
type DrawResponse struct {
	Message   string           `json:"message"`
	Signature string           `json:"signature,omitempty"`
	Winner    string           `json:"winner,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"` // SOL
	Confirmed *bool            `json:"confirmed,omitempty"`
}
