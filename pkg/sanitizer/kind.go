package sanitizer

import (
	"strings"
)

// Kind selects the validation rules applied by Validate.
type Kind uint8

const (
	// KindText is the default kind: markup is stripped along with every
	// block-severity construct.
	KindText Kind = iota
	// KindEmail strips markup and script protocols. It does not check
	// address syntax.
	KindEmail
	// KindURL forces an http(s) scheme and strips script protocols.
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindEmail:
		return "email"
	case KindURL:
		return "url"
	default:
		return "text"
	}
}

// ParseKind maps "text", "email" or "url" onto a Kind, case-insensitively.
// Any other value yields KindText.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "email":
		return KindEmail
	case "url":
		return KindURL
	default:
		return KindText
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so a Kind can be read
// from env tags and flags. It never fails.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = ParseKind(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
