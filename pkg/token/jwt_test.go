package token_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lloms/securekit/pkg/token"
)

const sampleJWT = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
	"eyJzdWIiOiIxMjM0NTY3ODkwIn0." +
	"SflKxwRJSMeKKF2QT4fwpMeJf36POk6yJV_adQssw5c"

func TestIsValidJWT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"real token", sampleJWT, true},
		{"three plain segments", "abc.def.ghi", true},
		{"padded standard base64", "YWJj.ZGVmZw==.aGk+Pz8/", true},
		{"empty segments allowed", "..", true},
		{"empty signature", "abc.def.", true},
		{"two segments", "abc.def", false},
		{"four segments", "a1b2.c3d4.e5f6.g7h8", false},
		{"empty string", "", false},
		{"single character segment", "a.bcd.efg", false},
		{"invalid characters", "abc!.def.ghi", false},
		{"mixed alphabets", "ab-+.def.ghi", false},
		{"non ascii bytes", "\xff\xfe.abc.def", false},
		{"whitespace", "abc .def.ghi", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, token.IsValidJWT(tt.token))
		})
	}
}

func TestSegments(t *testing.T) {
	t.Parallel()

	t.Run("decodes every segment", func(t *testing.T) {
		t.Parallel()
		segs, err := token.Segments(sampleJWT)
		require.NoError(t, err)
		assert.JSONEq(t, `{"alg":"HS256","typ":"JWT"}`, string(segs[0]))
		assert.JSONEq(t, `{"sub":"1234567890"}`, string(segs[1]))
		assert.Len(t, segs[2], 32)
	})

	t.Run("independently encoded segments", func(t *testing.T) {
		t.Parallel()
		enc := base64.RawURLEncoding
		tok := enc.EncodeToString([]byte("head")) + "." +
			enc.EncodeToString([]byte("body")) + "." +
			enc.EncodeToString([]byte{0xfb, 0xff, 0x00})
		segs, err := token.Segments(tok)
		require.NoError(t, err)
		assert.Equal(t, []byte("head"), segs[0])
		assert.Equal(t, []byte("body"), segs[1])
		assert.Equal(t, []byte{0xfb, 0xff, 0x00}, segs[2])
	})

	t.Run("shape errors", func(t *testing.T) {
		t.Parallel()
		_, err := token.Segments("abc.def")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
		_, err = token.Segments("")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
		_, err = token.Segments("a.b.c")
		assert.ErrorIs(t, err, token.ErrInvalidSegment)
	})
}
