// Package validate provides the input predicates used by mutating
// operations. All functions are pure: no I/O, no errors, just booleans.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[A-Za-z]{2,}$`)

// NonEmpty reports whether s contains at least one non-whitespace rune.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Email reports whether s has a local@domain.tld shape.
// An empty string is not a valid email.
func Email(s string) bool {
	if s == "" {
		return false
	}
	return emailPattern.MatchString(s)
}

// ISODate reports whether s is a valid calendar date in YYYY-MM-DD form.
// Other orderings and separators (02-12-2025, 2025/12/02) are rejected.
func ISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Hours reports whether h is in the workable range 0 < h <= 24.
func Hours(h float64) bool {
	return h > 0 && h <= 24
}

// HoursString parses s as a number and applies the Hours range check.
// Non-numeric input is invalid.
func HoursString(s string) bool {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return false
	}
	return Hours(h)
}
