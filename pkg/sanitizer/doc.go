// Package sanitizer neutralizes markup and script injection in untrusted
// text.
//
// The package is built around a fixed, case-insensitive pattern catalog
// (script/iframe/object/embed elements, on* event handlers, javascript:,
// data: and vbscript: pseudo-protocols, plus a few detection-only vectors
// such as <img onerror>). Three entry points use it:
//
//   - Sanitize removes every block-severity match, looping until a full
//     round changes nothing. Nested payloads like "<scr<script>ipt>" cannot
//     survive, and the result is a fixed point: Sanitize(Sanitize(x)) ==
//     Sanitize(x).
//   - IsMalicious and Detect classify raw input without modifying it.
//   - Validate applies per-kind rules (KindText, KindEmail, KindURL) on top
//     of the same loop.
//
// The loop is bounded by a pass ceiling (DefaultMaxRounds). When the ceiling
// is hit the engine logs a warning and strips every markup delimiter
// instead, so the call always terminates with a safe result.
//
// This is not an HTML parser and does not produce markup that is safe to
// render as-is: escape the result with EscapeHTML before embedding it.
//
//	name := sanitizer.Validate(form.Get("name"), sanitizer.KindText)
//	site := sanitizer.Validate(form.Get("website"), sanitizer.KindURL)
//	if sanitizer.IsMalicious(form.Get("comment")) {
//	    // reject or flag
//	}
//
// Package-level functions use a default Engine; build your own with New to
// attach a logger or tune the ceiling:
//
//	eng := sanitizer.New(sanitizer.WithLogger(log), sanitizer.WithMaxRounds(50))
//
// None of the functions return errors. Non-string input given to
// SanitizeValue or ValidateValue yields "".
package sanitizer
