package domain

import "time"

// NonceKind separates CSRF tokens from per-wallet action nonces.
type NonceKind string

const (
	NonceKindCSRF   NonceKind = "csrf"
	NonceKindAction NonceKind = "action"
)

// CSRFWallet is the pseudo-wallet every CSRF token is bound to.
const CSRFWallet = "csrf-token"

// Nonce is a single-use token binding one prepared action to one submission.
type Nonce struct {
	WalletAddress string
	Token         string
	Kind          NonceKind
	ExpiresAt     time.Time
}
