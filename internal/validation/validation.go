// Package validation holds the create-employee form rules.
package validation

import (
	"regexp"
	"unicode/utf16"
)

// notSpace excludes every character browsers treat as whitespace, which is
// wider than RE2's ASCII-only \s.
const notSpace = `[^\s\v\p{Z}\x{FEFF}@]`

var emailRegex = regexp.MustCompile(`^` + notSpace + `+@` + notSpace + `+\.` + notSpace + `+$`)

// ValidateEmail reports whether value has the shape local@domain.tld.
func ValidateEmail(value string) bool {
	return emailRegex.MatchString(value)
}

const (
	PasswordMinLen = 6
	PasswordMaxLen = 12
)

// ValidatePassword requires 6-12 characters with at least one digit, one
// lowercase and one uppercase ASCII letter. Length is counted in UTF-16 code
// units, as the browser counts it. Line breaks are not allowed.
func ValidatePassword(value string) bool {
	if n := utf16Len(value); n < PasswordMinLen || n > PasswordMaxLen {
		return false
	}
	var digit, lower, upper bool
	for _, r := range value {
		switch {
		case r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029':
			return false
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		}
	}
	return digit && lower && upper
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// Contains reports whether value is one of options.
func Contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
