package validation

import (
	"regexp"
	"strings"
)

// decimalRegex accepts an optional single sign, digits, and at most one
// comma or dot separator. Geocoding providers localize the separator, so a
// comma must be treated as a decimal point, never as a thousands separator.
var decimalRegex = regexp.MustCompile(`^[+-]?\d+([.,]\d+)?$`)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsDecimal validates a decimal number with either separator
func IsDecimal(s string) bool {
	return decimalRegex.MatchString(s)
}

// NormalizeDecimal converts a comma decimal separator to a dot.
// Returns false if the input is not a valid decimal number.
func NormalizeDecimal(s string) (string, bool) {
	if !decimalRegex.MatchString(s) {
		return "", false
	}
	return strings.Replace(s, ",", ".", 1), true
}
