package secrets

import "errors"

var (
	ErrInvalidAppKey   = errors.New("invalid app key: must be 32 bytes")
	ErrInvalidScopeKey = errors.New("invalid scope key: must be 32 bytes")

	ErrEncryptionFailed  = errors.New("encryption failed")
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext format")

	ErrKeyDerivationFailed = errors.New("key derivation failed")
	ErrInvalidKeyEncoding  = errors.New("key is not valid base64")
	ErrInvalidKeySize      = errors.New("decoded key must be 32 bytes")
)
