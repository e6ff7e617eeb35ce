package solana

import (
	"errors"
	"fmt"

	"solana-lottery/config"
	"solana-lottery/internal/core/domain"

	sol "github.com/gagliardetto/solana-go"
)

// Wallet implements ports.CustodialWallet with a local ed25519 key.
type Wallet struct {
	key sol.PrivateKey
}

// NewWallet loads the custodial key from cfg. The inline base58 key wins
// over the keygen file. The derived address must match CustodialAddress
// when that is set.
func NewWallet(cfg config.ChainConfig) (*Wallet, error) {
	var (
		key sol.PrivateKey
		err error
	)
	switch {
	case cfg.CustodialKey != "":
		key, err = sol.PrivateKeyFromBase58(cfg.CustodialKey)
	case cfg.CustodialKeyFile != "":
		key, err = sol.PrivateKeyFromSolanaKeygenFile(cfg.CustodialKeyFile)
	default:
		return nil, errors.New("no custodial key configured")
	}
	if err != nil {
		return nil, fmt.Errorf("loading custodial key: %w", err)
	}

	w := &Wallet{key: key}
	if cfg.CustodialAddress != "" && w.Address() != cfg.CustodialAddress {
		return nil, fmt.Errorf("custodial key does not match address %s", cfg.CustodialAddress)
	}
	return w, nil
}

// Address returns the custodial public key in base58.
func (w *Wallet) Address() string {
	return w.key.PublicKey().String()
}

// SignTransfer builds and signs a single transfer from the custodial wallet.
func (w *Wallet) SignTransfer(to string, lamports uint64, blockhash string) ([]byte, error) {
	tx, err := buildTransfer(w.Address(), []domain.TransferLeg{
		{Name: "payout", Destination: to, Lamports: lamports},
	}, blockhash)
	if err != nil {
		return nil, err
	}

	pub := w.key.PublicKey()
	if _, err := tx.Sign(func(k sol.PublicKey) *sol.PrivateKey {
		if k.Equals(pub) {
			return &w.key
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("sign payout: %w", err)
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("serialize payout: %w", err)
	}
	return raw, nil
}
