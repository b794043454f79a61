package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NotBlank reports whether s has at least one non-space character.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MinLen reports whether s has at least n characters (runes).
func MinLen(n int) func(string) bool {
	return func(s string) bool { return utf8.RuneCountInString(s) >= n }
}

// MaxLen reports whether s has at most n characters (runes).
func MaxLen(n int) func(string) bool {
	return func(s string) bool { return utf8.RuneCountInString(s) <= n }
}

// LenBetween reports whether the character count of s is within [min, max].
func LenBetween(min, max int) func(string) bool {
	return func(s string) bool {
		n := utf8.RuneCountInString(s)
		return n >= min && n <= max
	}
}

func ASCIIOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func NoWhitespace(s string) bool {
	return !strings.ContainsFunc(s, unicode.IsSpace)
}

// Printable reports whether s has no control characters.
func Printable(s string) bool {
	return !strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsPrint(r) && !unicode.IsSpace(r)
	})
}

func ContainsUpper(s string) bool { return strings.ContainsFunc(s, unicode.IsUpper) }
func ContainsLower(s string) bool { return strings.ContainsFunc(s, unicode.IsLower) }
func ContainsDigit(s string) bool { return strings.ContainsFunc(s, unicode.IsDigit) }
