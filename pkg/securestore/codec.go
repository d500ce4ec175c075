package securestore

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strings"

	"github.com/lloms/securekit/pkg/secrets"
)

// Codec turns serialized values into the text written to a Backend and back.
type Codec interface {
	Encode(plain []byte) (string, error)
	Decode(text string) ([]byte, error)
}

// EncodingCodec percent-escapes UTF-8 the way encodeURIComponent does and
// then base64-encodes the result (standard alphabet, padded). Values written
// by browser code using btoa(encodeURIComponent(json)) decode unchanged.
//
// EncodingCodec is NOT encryption. It only keeps values from being readable
// at a glance in a storage inspector; anyone with access to the backing
// store can reverse it. Use SealedCodec when values must stay confidential.
type EncodingCodec struct{}

func (EncodingCodec) Encode(plain []byte) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(escapeComponent(plain))), nil
}

func (EncodingCodec) Decode(text string) ([]byte, error) {
	escaped, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, err
	}
	plain, err := url.PathUnescape(string(escaped))
	if err != nil {
		return nil, err
	}
	return []byte(plain), nil
}

// escapeComponent leaves A-Z a-z 0-9 - _ . ! ~ * ' ( ) as they are and
// percent-encodes every other byte with upper-case hex digits.
func escapeComponent(b []byte) string {
	const hex = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for _, c := range b {
		if isUnreservedComponent(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&0x0F])
	}
	return sb.String()
}

func isUnreservedComponent(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// SealedCodec encrypts values with AES-256-GCM (see package secrets) and
// base64-encodes the sealed bytes. Tampered or foreign values fail to
// decode.
type SealedCodec struct {
	sealer *secrets.Sealer
}

// NewSealedCodec derives the sealing key from a 32-byte app key and a
// 32-byte scope key.
func NewSealedCodec(appKey, scopeKey []byte) (*SealedCodec, error) {
	s, err := secrets.NewSealer(appKey, scopeKey)
	if err != nil {
		return nil, err
	}
	return &SealedCodec{sealer: s}, nil
}

func (c *SealedCodec) Encode(plain []byte) (string, error) {
	sealed, err := c.sealer.Seal(plain)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *SealedCodec) Decode(text string) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, err
	}
	return c.sealer.Open(sealed)
}

// CodecFromConfig returns a SealedCodec when both keys are configured and
// EncodingCodec when neither is.
func CodecFromConfig(cfg Config) (Codec, error) {
	switch {
	case cfg.AppKey == "" && cfg.ScopeKey == "":
		return EncodingCodec{}, nil
	case cfg.AppKey == "" || cfg.ScopeKey == "":
		return nil, ErrIncompleteKeys
	}

	appKey, err := secrets.DecodeKey(cfg.AppKey)
	if err != nil {
		return nil, errors.Join(ErrInvalidKeys, err)
	}
	scopeKey, err := secrets.DecodeKey(cfg.ScopeKey)
	if err != nil {
		return nil, errors.Join(ErrInvalidKeys, err)
	}
	return NewSealedCodec(appKey, scopeKey)
}
