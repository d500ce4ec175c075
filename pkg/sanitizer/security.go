package sanitizer

import "html"

// EscapeHTML escapes HTML special characters. Use it on sanitized text that
// is about to be rendered inside markup.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML unescapes HTML entities. The result is untrusted again and
// must be sanitized before use.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}
