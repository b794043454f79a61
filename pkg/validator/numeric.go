package validator

import "cmp"

// Gt reports whether v > bound.
func Gt[T cmp.Ordered](bound T) func(T) bool {
	return func(v T) bool { return v > bound }
}

// Lt reports whether v < bound.
func Lt[T cmp.Ordered](bound T) func(T) bool {
	return func(v T) bool { return v < bound }
}

// Ge reports whether v >= bound.
func Ge[T cmp.Ordered](bound T) func(T) bool {
	return func(v T) bool { return v >= bound }
}

// Le reports whether v <= bound.
func Le[T cmp.Ordered](bound T) func(T) bool {
	return func(v T) bool { return v <= bound }
}

func Eq[T comparable](want T) func(T) bool {
	return func(v T) bool { return v == want }
}

func Ne[T comparable](other T) func(T) bool {
	return func(v T) bool { return v != other }
}

// Between reports whether min <= v <= max.
func Between[T cmp.Ordered](min, max T) func(T) bool {
	return func(v T) bool { return v >= min && v <= max }
}

// Convenience aliases

func LargerThan[T cmp.Ordered](bound T) func(T) bool  { return Gt(bound) }
func SmallerThan[T cmp.Ordered](bound T) func(T) bool { return Lt(bound) }
func InRange[T cmp.Ordered](min, max T) func(T) bool  { return Between(min, max) }

// Number covers the built-in integer and float types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Positive reports whether v > 0.
func Positive[T Number](v T) bool {
	return v > 0
}

// NonNegative reports whether v >= 0.
func NonNegative[T Number](v T) bool {
	return v >= 0
}
