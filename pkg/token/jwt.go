package token

import (
	"encoding/base64"
	"strings"
)

// IsValidJWT reports whether token has the shape of a JWT: exactly three
// dot-separated segments, each either empty or valid base64 in the standard
// or URL alphabet, padded or not.
//
// This is a structural check only. It verifies no signature and no claim.
func IsValidJWT(token string) bool {
	_, err := Segments(token)
	return err == nil
}

// Segments splits token into its three segments and decodes each of them.
// Empty segments decode to nil.
func Segments(token string) ([3][]byte, error) {
	var out [3][]byte
	if token == "" {
		return out, ErrInvalidToken
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return out, ErrInvalidToken
	}

	for i, part := range parts {
		if part == "" {
			continue
		}
		b, err := decodeSegment(part)
		if err != nil {
			return out, ErrInvalidSegment
		}
		out[i] = b
	}
	return out, nil
}

func decodeSegment(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")
	if b, err := base64.RawURLEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
