package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/cache"
)

// Preset patterns.
const (
	PatternUsername      = `^[a-zA-Z0-9_-]{3,}$`
	PatternHexColor      = `^#?([a-fA-F0-9]{8}|[a-fA-F0-9]{6}|[a-fA-F0-9]{4}|[a-fA-F0-9]{3})$`
	PatternTime12h       = `^(0?[1-9]|1[0-2]):[0-5][0-9]$`
	PatternTime12hSuffix = `^(1[0-2]|0?[1-9]):[0-5][0-9] ?[AaPp][Mm]$`
	PatternTime24h       = `^([01]?[0-9]|2[0-3]):[0-5][0-9]$`
)

const patternCacheSize = 256

// patterns dedupes compilation across constructors. Matchers keep their own
// *regexp.Regexp, so eviction never forces a recompile of a live matcher.
var patterns = cache.New[string, *regexp.Regexp](patternCacheSize)

func compile(pattern string) (*regexp.Regexp, error) {
	re, err := patterns.GetOrLoad(pattern, regexp.Compile)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}

// Matches reports whether s matches pattern. The pattern is compiled once,
// when Matches is called. A pattern that does not compile is an author error:
// the returned predicate yields ErrInvalidPattern on every call without
// looking at s. Use MustMatch to fail at schema construction instead.
func Matches(pattern string) func(string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return func(string) (bool, error) { return false, err }
	}
	return func(s string) (bool, error) {
		return re.MatchString(s), nil
	}
}

// MustMatch is like Matches but panics on a bad pattern.
func MustMatch(pattern string) func(string) bool {
	re, err := compile(pattern)
	if err != nil {
		panic(err)
	}
	return re.MatchString
}

var (
	username      = MustMatch(PatternUsername)
	hexColor      = MustMatch(PatternHexColor)
	time12h       = MustMatch(PatternTime12h)
	time12hSuffix = MustMatch(PatternTime12hSuffix)
	time24h       = MustMatch(PatternTime24h)
)

// Email reports whether s is a bare address such as "jane@example.com".
// Display names and angle brackets are rejected.
func Email(s string) bool {
	if strings.TrimSpace(s) != s || s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// URL reports whether s is an absolute http or https URL with a host.
func URL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Username allows letters, digits, underscore and dash, at least three characters.
func Username(s string) bool { return username(s) }

// HexColor accepts #rgb, #rgba, #rrggbb and #rrggbbaa, with or without "#".
func HexColor(s string) bool { return hexColor(s) }

// Time12h accepts "h:mm" or "hh:mm" on a 12-hour clock without suffix.
func Time12h(s string) bool { return time12h(s) }

// Time12hSuffix accepts 12-hour times with an am/pm suffix, e.g. "9:30 PM".
func Time12hSuffix(s string) bool { return time12hSuffix(s) }

// Time24h accepts "h:mm" or "hh:mm" on a 24-hour clock.
func Time24h(s string) bool { return time24h(s) }
