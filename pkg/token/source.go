package token

import (
	"crypto/rand"
	"errors"
	"math/big"
	mrand "math/rand/v2"
)

// RandomSource supplies uniformly distributed indexes in [0, n).
type RandomSource interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. It is the default source and the only
// one suitable for session identifiers or anything used for authentication.
type CryptoSource struct{}

// Intn returns a uniform value in [0, n) using rejection sampling.
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("token: n must be positive")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Join(ErrRandomSource, err)
	}
	return int(v.Int64()), nil
}

// MathSource draws from math/rand/v2. It is predictable and must not be
// used for security-sensitive tokens; pass a seeded *mrand.Rand for
// reproducible output in tests.
type MathSource struct {
	Rand *mrand.Rand
}

// Intn returns a value in [0, n).
func (s MathSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("token: n must be positive")
	}
	if s.Rand == nil {
		return mrand.IntN(n), nil
	}
	return s.Rand.IntN(n), nil
}
