package redact

import (
	"errors"
	"os"
)

// Config selects the marker and an optional YAML file of extra rules.
type Config struct {
	Marker    string `env:"REDACT_MARKER" envDefault:"[REDACTED]"`
	RulesFile string `env:"REDACT_RULES_FILE"`
}

// Redactor replaces sensitive spans in human-readable messages. It is
// immutable after New and safe for concurrent use.
type Redactor struct {
	rules    []compiledRule
	fallback string
}

type options struct {
	marker   string
	fallback string
	extra    []Rule
}

// Option configures a Redactor.
type Option func(*options)

// WithMarker sets the replacement used by rules without their own. Empty
// values are ignored.
func WithMarker(marker string) Option {
	return func(o *options) {
		if marker != "" {
			o.marker = marker
		}
	}
}

// WithFallback sets the message returned for empty or non-text input.
func WithFallback(msg string) Option {
	return func(o *options) { o.fallback = msg }
}

// WithRules appends rules after the defaults.
func WithRules(rules ...Rule) Option {
	return func(o *options) { o.extra = append(o.extra, rules...) }
}

// New compiles the default rules plus any added with WithRules.
func New(opts ...Option) (*Redactor, error) {
	o := options{marker: Marker, fallback: Fallback}
	for _, opt := range opts {
		opt(&o)
	}

	all := append(DefaultRules(), o.extra...)
	compiled := make([]compiledRule, 0, len(all))
	for _, rule := range all {
		c, err := compile(rule, o.marker)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, c)
	}
	return &Redactor{rules: compiled, fallback: o.fallback}, nil
}

// NewFromConfig builds a Redactor from cfg, reading cfg.RulesFile when set.
func NewFromConfig(cfg Config, opts ...Option) (*Redactor, error) {
	base := []Option{WithMarker(cfg.Marker)}
	if cfg.RulesFile != "" {
		f, err := os.Open(cfg.RulesFile)
		if err != nil {
			return nil, errors.Join(ErrLoadRules, err)
		}
		defer f.Close()

		rules, err := LoadRules(f)
		if err != nil {
			return nil, err
		}
		base = append(base, WithRules(rules...))
	}
	return New(append(base, opts...)...)
}

// Redact applies every rule in order. An empty message yields the fallback.
func (r *Redactor) Redact(msg string) string {
	if msg == "" {
		return r.fallback
	}
	for _, rule := range r.rules {
		msg = rule.expr.ReplaceAllLiteralString(msg, rule.replacement)
	}
	return msg
}

// RedactError redacts err.Error(). A nil error yields the fallback.
func (r *Redactor) RedactError(err error) string {
	if err == nil {
		return r.fallback
	}
	return r.Redact(err.Error())
}

// RedactValue redacts strings and errors; anything else yields the fallback.
func (r *Redactor) RedactValue(v any) string {
	switch v := v.(type) {
	case string:
		return r.Redact(v)
	case *string:
		if v == nil {
			return r.fallback
		}
		return r.Redact(*v)
	case error:
		return r.RedactError(v)
	default:
		return r.fallback
	}
}

// Matched returns the names of the rules that match msg, in rule order.
func (r *Redactor) Matched(msg string) []string {
	var names []string
	for _, rule := range r.rules {
		if rule.expr.MatchString(msg) {
			names = append(names, rule.name)
		}
	}
	return names
}

var defaultRedactor = mustDefault()

func mustDefault() *Redactor {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Redact applies the default rules.
func Redact(msg string) string { return defaultRedactor.Redact(msg) }

// RedactError applies the default rules to err.
func RedactError(err error) string { return defaultRedactor.RedactError(err) }

// RedactValue applies the default rules to v.
func RedactValue(v any) string { return defaultRedactor.RedactValue(v) }
