package sanitizer

import "regexp"

// Severity tells the engine what to do with a pattern match.
type Severity uint8

const (
	// SeverityBlock patterns are removed by Sanitize and Validate.
	SeverityBlock Severity = iota
	// SeverityWarn patterns only take part in detection.
	SeverityWarn
)

func (s Severity) String() string {
	switch s {
	case SeverityBlock:
		return "block"
	case SeverityWarn:
		return "warn"
	default:
		return "unknown"
	}
}

// Pattern is a single entry of the dangerous-construct catalog.
type Pattern struct {
	Name     string
	Severity Severity
	re       *regexp.Regexp
	replace  string
}

// MatchString reports whether s contains a match of the pattern.
func (p Pattern) MatchString(s string) bool {
	return p.re.MatchString(s)
}

// FindString returns the leftmost match of the pattern in s, or "".
func (p Pattern) FindString(s string) string {
	return p.re.FindString(s)
}

func newPattern(name string, severity Severity, expr string) Pattern {
	return Pattern{Name: name, Severity: severity, re: regexp.MustCompile(expr)}
}

// keep sets the expansion template used in place of a match, so a pattern
// can give back delimiters it had to consume.
func (p Pattern) keep(template string) Pattern {
	p.replace = template
	return p
}

// handlerAttr is an on* attribute with a quoted or bare value. A handler may
// follow whitespace, a slash or directly the closing quote of the previous
// attribute; that quote is kept.
const handlerAttr = `on\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]*)`

// Every pattern is case-insensitive. RE2 has no look-ahead, so element
// patterns pair the open tag with the nearest close tag using a lazy body.
var (
	scriptElement = newPattern("script", SeverityBlock, `(?is)<script\b[^>]*>.*?</script[^>]*>`)
	iframeElement = newPattern("iframe", SeverityBlock, `(?is)<iframe\b[^>]*>.*?</iframe\s*>`)
	objectElement = newPattern("object", SeverityBlock, `(?is)<object\b[^>]*>.*?</object\s*>`)
	embedElement  = newPattern("embed", SeverityBlock, `(?is)<embed\b[^>]*>.*?</embed\s*>`)
	eventHandler  = newPattern("event-handler", SeverityBlock, `(?i)(["'])[\s/]*`+handlerAttr+`|[\s/]+`+handlerAttr).keep("$1")
	jsProtocol    = newPattern("javascript", SeverityBlock, `(?i)javascript\s*:`)
	dangerousTag  = newPattern("dangerous-tag", SeverityBlock, `(?i)<\s*/?\s*(?:script|iframe|object|embed)[^>]*>?`)
	dataProtocol  = newPattern("data", SeverityBlock, `(?i)data:`)
	vbProtocol    = newPattern("vbscript", SeverityBlock, `(?i)vbscript\s*:`)

	eventAttribute   = newPattern("event-attribute", SeverityWarn, `(?i)\bon\w+\s*=`)
	imgOnError       = newPattern("img-onerror", SeverityWarn, `(?i)<img\b[^>]*onerror`)
	imgOnLoad        = newPattern("img-onload", SeverityWarn, `(?i)<img\b[^>]*onload`)
	anchorJavaScript = newPattern("anchor-javascript", SeverityWarn, `(?i)<a\b[^>]*javascript:`)

	// anyTag is not part of the catalog: it strips benign markup for the
	// email and text input kinds.
	anyTag = newPattern("tag", SeverityBlock, `<[^>]*>`)
)

// catalog is ordered: block patterns run in this order on every round.
var catalog = []Pattern{
	scriptElement,
	iframeElement,
	objectElement,
	embedElement,
	eventHandler,
	jsProtocol,
	dangerousTag,
	dataProtocol,
	vbProtocol,
	eventAttribute,
	imgOnError,
	imgOnLoad,
	anchorJavaScript,
}

var blockPatterns = filter(catalog, SeverityBlock)

// Catalog returns a copy of the pattern table in application order.
func Catalog() []Pattern {
	out := make([]Pattern, len(catalog))
	copy(out, catalog)
	return out
}

func filter(patterns []Pattern, severity Severity) []Pattern {
	out := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		if p.Severity == severity {
			out = append(out, p)
		}
	}
	return out
}
