package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
)

// Sealer encrypts and authenticates data with AES-256-GCM under a key
// derived from an app key and a scope key. The derived key is computed once;
// a Sealer is safe for concurrent use.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer validates both keys and derives the sealing key.
func NewSealer(appKey, scopeKey []byte) (*Sealer, error) {
	if err := ValidateKeys(appKey, scopeKey); err != nil {
		return nil, err
	}

	key, err := deriveKey(appKey, scopeKey)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts data. The output is nonce || ciphertext || tag.
func (s *Sealer) Seal(data []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return s.aead.Seal(nonce, nonce, data, nil), nil
}

// Open authenticates and decrypts the output of Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	n := s.aead.NonceSize()
	if len(sealed) < n+s.aead.Overhead() {
		return nil, ErrInvalidCiphertext
	}

	nonce, ciphertext := sealed[:n], sealed[n:]
	plain, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return plain, nil
}

// EncryptBytes is a one-shot Seal with a freshly derived key.
func EncryptBytes(appKey, scopeKey, data []byte) ([]byte, error) {
	s, err := NewSealer(appKey, scopeKey)
	if err != nil {
		return nil, err
	}
	return s.Seal(data)
}

// DecryptBytes is a one-shot Open with a freshly derived key.
func DecryptBytes(appKey, scopeKey, sealed []byte) ([]byte, error) {
	s, err := NewSealer(appKey, scopeKey)
	if err != nil {
		return nil, err
	}
	return s.Open(sealed)
}
