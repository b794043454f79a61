package validator

import (
	"slices"
	"strings"
)

// OneOf reports whether v is one of options.
func OneOf[T comparable](options ...T) func(T) bool {
	return func(v T) bool { return slices.Contains(options, v) }
}

// NoneOf reports whether v is none of options.
func NoneOf[T comparable](options ...T) func(T) bool {
	return func(v T) bool { return !slices.Contains(options, v) }
}

// OneOfFold is OneOf for strings under Unicode case folding.
func OneOfFold(options ...string) func(string) bool {
	return func(v string) bool {
		return slices.ContainsFunc(options, func(o string) bool {
			return strings.EqualFold(o, v)
		})
	}
}
