package redact

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// Marker replaces every redacted span unless a rule says otherwise.
	Marker = "[REDACTED]"
	// Fallback is returned for empty or non-text messages.
	Fallback = "An error occurred"
)

var (
	ErrRuleName    = errors.New("redact: rule name is required")
	ErrRulePattern = errors.New("redact: rule pattern is required")
	ErrLoadRules   = errors.New("redact: failed to load rules")
)

// Rule declares one sensitive pattern. An empty Replacement means the
// redactor's marker.
type Rule struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement,omitempty"`
}

// credentialValue is a quoted value, up to the closing quote or the end of
// the message when unterminated, or a bare value ending at whitespace, a
// separator or a quote.
const credentialValue = `(?:"[^"]*"?|'[^']*'?|[^\s,;&"']*)`

func credential(key string) Rule {
	return Rule{Name: key, Pattern: `(?i)` + regexp.QuoteMeta(key) + `=` + credentialValue}
}

// DefaultRules returns the built-in rules in application order: credential
// fields first, then loopback and private network addresses. Private
// addresses may be partial; a bare "10.x" is left alone since it reads as a
// version number.
func DefaultRules() []Rule {
	return []Rule{
		credential("user"),
		credential("password"),
		credential("host"),
		credential("port"),
		credential("database"),
		credential("api_key"),
		credential("secret"),
		credential("token"),
		{Name: "localhost", Pattern: `(?i)localhost`},
		{Name: "loopback", Pattern: `\b127\.0\.0\.1\b`},
		{Name: "private-192", Pattern: `\b192\.168(?:\.\d{1,3}){0,2}\b`},
		{Name: "private-10", Pattern: `\b10(?:\.\d{1,3}){2,3}\b`},
		{Name: "private-172", Pattern: `\b172\.(?:1[6-9]|2\d|3[01])(?:\.\d{1,3}){0,2}\b`},
	}
}

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads extra rules from YAML of the form
//
//	rules:
//	  - name: session
//	    pattern: 'sid=\w+'
//	    replacement: '[SID]'
//
// Patterns are compiled to catch mistakes early.
func LoadRules(r io.Reader) ([]Rule, error) {
	var f ruleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrLoadRules, err)
	}
	for _, rule := range f.Rules {
		if _, err := compile(rule, Marker); err != nil {
			return nil, errors.Join(ErrLoadRules, err)
		}
	}
	return f.Rules, nil
}

type compiledRule struct {
	name        string
	expr        *regexp.Regexp
	replacement string
}

func compile(rule Rule, marker string) (compiledRule, error) {
	name := strings.TrimSpace(rule.Name)
	if name == "" {
		return compiledRule{}, ErrRuleName
	}
	pattern := strings.TrimSpace(rule.Pattern)
	if pattern == "" {
		return compiledRule{}, fmt.Errorf("%w: %s", ErrRulePattern, name)
	}
	expr, err := regexp.Compile(pattern)
	if err != nil {
		return compiledRule{}, fmt.Errorf("redact: invalid pattern for rule %s: %w", name, err)
	}
	replacement := rule.Replacement
	if replacement == "" {
		replacement = marker
	}
	return compiledRule{name: name, expr: expr, replacement: replacement}, nil
}
