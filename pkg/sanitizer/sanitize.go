package sanitizer

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lloms/securekit/pkg/logger"
)

// DefaultMaxRounds caps the number of replacement passes a single call may
// make before the engine gives up on reaching a fixed point.
const DefaultMaxRounds = 100

// Config holds the engine settings loadable from the environment.
type Config struct {
	MaxRounds int  `env:"SANITIZER_MAX_ROUNDS" envDefault:"100"`
	Normalize bool `env:"SANITIZER_NORMALIZE" envDefault:"true"`
}

// Engine removes dangerous constructs from untrusted text. An Engine is
// immutable after New and safe for concurrent use.
type Engine struct {
	maxRounds int
	normalize bool
	log       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxRounds sets the replacement pass ceiling. Non-positive values are ignored.
func WithMaxRounds(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxRounds = n
		}
	}
}

// WithNormalization toggles NFKC folding of compatibility forms
// ("ｊａｖａｓｃｒｉｐｔ：") onto their ASCII counterparts. The text is only
// folded when the folded form contains a block match; clean input is
// returned byte for byte.
func WithNormalization(enabled bool) Option {
	return func(e *Engine) { e.normalize = enabled }
}

// WithLogger sets the logger receiving ceiling warnings.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithConfig applies a Config loaded from the environment.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		WithMaxRounds(cfg.MaxRounds)(e)
		e.normalize = cfg.Normalize
	}
}

// New creates an Engine. Without options it folds disguised payloads, allows
// DefaultMaxRounds passes and logs nothing.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxRounds: DefaultMaxRounds,
		normalize: true,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Sanitize removes every block-severity catalog match from s using the
// default engine. See Engine.Sanitize.
func Sanitize(s string) string {
	return defaultEngine.Sanitize(s)
}

// SanitizeValue sanitizes v when it is a string or a non-nil *string and
// returns "" for anything else, including nil.
func SanitizeValue(v any) string {
	return defaultEngine.Sanitize(textOf(v))
}

// Sanitize strips every block-severity catalog match from s, looping until
// a full round leaves the text unchanged. Nested payloads such as
// "<scr<script>ipt>" therefore cannot reassemble into a live tag.
//
// The result contains no block-severity match and Sanitize is idempotent.
// If the pass ceiling is reached the engine logs a warning and falls back
// to removing every markup delimiter, which also satisfies both properties.
func (e *Engine) Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return e.fixedPoint(s, blockPatterns)
}

func (e *Engine) fixedPoint(s string, patterns []Pattern) string {
	passes := 0
	for {
		changed := false
		if e.normalize {
			if n := norm.NFKC.String(s); n != s && matchesAny(n, patterns) {
				s, changed = n, true
			}
		}
		for _, p := range patterns {
			for p.re.MatchString(s) {
				if passes >= e.maxRounds {
					logger.SecurityEvent(context.Background(), e.log, slog.LevelWarn, "sanitize_ceiling",
						logger.Component("sanitizer"),
						logger.Pattern(p.Name),
						logger.Rounds(passes),
						logger.InputLength(len(s)),
					)
					return e.fallback(s)
				}
				s = p.re.ReplaceAllString(s, p.replace)
				passes++
				changed = true
			}
		}
		if !changed {
			return s
		}
	}
}

// fallback drops every markup tag and then every character that any block
// pattern needs in order to match.
func (e *Engine) fallback(s string) string {
	if e.normalize {
		s = norm.NFKC.String(s)
	}
	s = stripDelimiters(anyTag.re.ReplaceAllString(s, ""))
	if e.normalize {
		// Removing characters may leave a non-composed sequence behind.
		s = stripDelimiters(norm.NFKC.String(s))
	}
	return s
}

func matchesAny(s string, patterns []Pattern) bool {
	for _, p := range patterns {
		if p.re.MatchString(s) {
			return true
		}
	}
	return false
}

func stripDelimiters(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '=':
			return -1
		}
		return r
	}, s)
}

func textOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	default:
		return ""
	}
}
