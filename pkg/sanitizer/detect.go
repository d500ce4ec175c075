package sanitizer

// Finding describes one catalog pattern that matched an input.
type Finding struct {
	Pattern  string
	Severity Severity
	Match    string
}

// IsMalicious reports whether any catalog pattern, block or warn, matches
// the raw input. It runs a single pass per pattern and never modifies s.
func IsMalicious(s string) bool {
	if s == "" {
		return false
	}
	for _, p := range catalog {
		if p.re.MatchString(s) {
			return true
		}
	}
	return false
}

// Detect lists every catalog pattern matching s, in catalog order, with the
// leftmost match of each. It returns nil for clean input.
func Detect(s string) []Finding {
	if s == "" {
		return nil
	}
	var findings []Finding
	for _, p := range catalog {
		if m := p.re.FindStringIndex(s); m != nil {
			findings = append(findings, Finding{
				Pattern:  p.Name,
				Severity: p.Severity,
				Match:    s[m[0]:m[1]],
			})
		}
	}
	return findings
}
