package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Picker selects a winning entry index in [0, n).
type Picker interface {
	Pick(n int) (int, error)
}

// CryptoPicker draws uniformly from crypto/rand.
type CryptoPicker struct{}

// Pick returns a uniform index in [0, n).
func (CryptoPicker) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("no entries to pick from")
	}
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading randomness: %w", err)
	}
	return int(idx.Int64()), nil
}
