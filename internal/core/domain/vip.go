package domain

import "time"

// VipEntitlement lifts the daily deposit cap until ExpiresAt.
type VipEntitlement struct {
	WalletAddress string    `json:"wallet_address"`
	ActivatedAt   time.Time `json:"activated_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// ActiveAt is true strictly before ExpiresAt.
func (v *VipEntitlement) ActiveAt(now time.Time) bool {
	if v == nil {
		return false
	}
	return now.Before(v.ExpiresAt)
}
