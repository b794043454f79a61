package sanitizer

import (
	"strings"
	"unicode"
)

func Trim(s string) string    { return strings.TrimSpace(s) }
func ToLower(s string) string { return strings.ToLower(s) }
func ToUpper(s string) string { return strings.ToUpper(s) }

// NormalizeWhitespace trims s and collapses inner whitespace runs to one space.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveControlChars drops non-printable characters except whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Truncate keeps at most n characters (runes) of s.
func Truncate(n int) func(string) string {
	return func(s string) string {
		if n <= 0 {
			return ""
		}
		i := 0
		for pos := range s {
			if i == n {
				return s[:pos]
			}
			i++
		}
		return s
	}
}
