package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required size for both app and scope keys.
	KeySize = 32

	// hkdfInfo separates keys derived here from any other HKDF use of the
	// same input keys.
	hkdfInfo = "securekit-securestore-v1"
)

// ValidateKeys checks that both keys are KeySize bytes long.
func ValidateKeys(appKey, scopeKey []byte) error {
	validApp := len(appKey) == KeySize
	validScope := len(scopeKey) == KeySize

	if !validApp {
		return ErrInvalidAppKey
	}
	if !validScope {
		return ErrInvalidScopeKey
	}
	return nil
}

// deriveKey combines the app key and the scope key with HKDF-SHA256.
func deriveKey(appKey, scopeKey []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, appKey, scopeKey, []byte(hkdfInfo))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}

// clearBytes zeroes b.
func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GenerateKey creates a new random KeySize-byte key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// DecodeKey parses a base64 (standard alphabet) key as found in env files
// and validates its size.
func DecodeKey(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrInvalidKeyEncoding, err)
	}
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	return key, nil
}
