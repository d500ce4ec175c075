package token

import (
	"strings"
)

// Alphabet is the 62-symbol set tokens are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultLength is the token length used when none is given.
const DefaultLength = 32

// Config holds generator settings loadable from the environment.
type Config struct {
	Length int `env:"TOKEN_LENGTH" envDefault:"32"`
}

// Generator produces opaque alphanumeric tokens. It is safe for concurrent
// use as long as its RandomSource is.
type Generator struct {
	source RandomSource
	length int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. Nil is ignored.
func WithSource(src RandomSource) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// WithLength sets the default token length. Non-positive values are ignored.
func WithLength(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.length = n
		}
	}
}

// WithConfig applies a Config loaded from the environment.
func WithConfig(cfg Config) Option {
	return WithLength(cfg.Length)
}

// NewGenerator creates a Generator backed by CryptoSource by default.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		source: CryptoSource{},
		length: DefaultLength,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a token of exactly length characters from Alphabet.
// A non-positive length selects the generator's default length.
func (g *Generator) Generate(length int) (string, error) {
	if length <= 0 {
		length = g.length
	}

	var b strings.Builder
	b.Grow(length)
	for range length {
		i, err := g.source.Intn(len(Alphabet))
		if err != nil {
			return "", err
		}
		b.WriteByte(Alphabet[i])
	}
	return b.String(), nil
}

var defaultGenerator = NewGenerator()

// Generate returns a crypto-random token of the given length.
func Generate(length int) (string, error) {
	return defaultGenerator.Generate(length)
}

// MustGenerate is like Generate but panics if the random source fails.
func MustGenerate(length int) string {
	tok, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return tok
}
