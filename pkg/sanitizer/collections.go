package sanitizer

import (
	"fmt"
	"strings"
)

// MapSlice applies fn to every element. A nil slice stays nil.
func MapSlice[F, T any](fn func(F) T) func([]F) []T {
	return func(in []F) []T {
		if in == nil {
			return nil
		}
		out := make([]T, len(in))
		for i, v := range in {
			out[i] = fn(v)
		}
		return out
	}
}

// TryMapSlice applies fn to every element and stops at the first error,
// which is annotated with the element index.
func TryMapSlice[F, T any](fn func(F) (T, error)) func([]F) ([]T, error) {
	return func(in []F) ([]T, error) {
		if in == nil {
			return nil, nil
		}
		out := make([]T, len(in))
		for i, v := range in {
			res, err := fn(v)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = res
		}
		return out, nil
	}
}

// Dedupe removes repeated elements, keeping the first occurrence.
func Dedupe[T comparable](in []T) []T {
	if in == nil {
		return nil
	}
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// FilterEmpty drops blank strings.
func FilterEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
