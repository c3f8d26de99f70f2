package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase renders a display name in word title case: "HOSPITAL SÃO LUCAS"
// becomes "Hospital São Lucas". This is a display transform, applied even to
// already-mixed-case input. Casers carry segmentation state, so one is built
// per call rather than shared.
func TitleCase(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(s)
}

// DigitsOnly strips every rune outside 0-9.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ZeroPad left-pads s with zeros to length n. Longer values pass through
// unchanged.
func ZeroPad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}
