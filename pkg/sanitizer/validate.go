package sanitizer

import (
	"strings"
)

// kindHandler is the per-kind validation recipe: a preparation step run
// once on the trimmed input, then a rule set run to a fixed point.
type kindHandler struct {
	prepare func(string) string
	rules   []Pattern
}

var kindHandlers = map[Kind]kindHandler{
	KindText: {
		prepare: strings.TrimSpace,
		rules: []Pattern{
			scriptElement,
			iframeElement,
			objectElement,
			embedElement,
			eventHandler,
			anyTag,
			dangerousTag,
			jsProtocol,
			dataProtocol,
			vbProtocol,
		},
	},
	KindEmail: {
		prepare: strings.TrimSpace,
		rules: []Pattern{
			anyTag,
			dangerousTag,
			jsProtocol,
			dataProtocol,
			vbProtocol,
		},
	},
	KindURL: {
		prepare: Compose(strings.TrimSpace, ensureScheme),
		rules: []Pattern{
			scriptElement,
			dangerousTag,
			jsProtocol,
			dataProtocol,
			vbProtocol,
		},
	},
}

// Validate normalizes untrusted input of the given kind with the default
// engine. See Engine.Validate.
func Validate(input string, kind Kind) string {
	return defaultEngine.Validate(input, kind)
}

// ValidateValue is Validate for loosely typed input: anything other than a
// string or a non-nil *string yields "".
func ValidateValue(v any, kind Kind) string {
	return defaultEngine.Validate(textOf(v), kind)
}

// Validate trims input and applies the rules of kind. Unknown kinds are
// treated as KindText. For every kind the result contains no
// case-insensitive "<script", "javascript:", "data:" or "vbscript:".
func (e *Engine) Validate(input string, kind Kind) string {
	h, ok := kindHandlers[kind]
	if !ok {
		h = kindHandlers[KindText]
	}

	s := h.prepare(input)
	if s == "" {
		return ""
	}
	return e.fixedPoint(s, h.rules)
}

// ensureScheme prefixes https:// unless s already starts with http:// or https://.
func ensureScheme(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s
	}
	return "https://" + s
}
