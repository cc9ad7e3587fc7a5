// Package phone normalizes Iranian mobile numbers to their canonical local form.
package phone

import (
	"regexp"
	"strings"
)

// Accepted mobile forms after whitespace stripping: 9XXXXXXXXX, 09XXXXXXXXX, +989XXXXXXXXX.
var mobilePattern = regexp.MustCompile(`^(\+98|0)?9\d{9}$`)

// Normalize strips whitespace and converts an accepted mobile number to the
// canonical 0-prefixed form (09XXXXXXXXX). ok is false when the input does not
// match the accepted forms.
func Normalize(raw string) (normalized string, ok bool) {
	clean := strings.Join(strings.Fields(raw), "")
	if !mobilePattern.MatchString(clean) {
		return "", false
	}
	switch {
	case strings.HasPrefix(clean, "+98"):
		return "0" + clean[3:], true
	case strings.HasPrefix(clean, "0"):
		return clean, true
	default:
		return "0" + clean, true
	}
}
