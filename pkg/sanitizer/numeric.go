package sanitizer

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Float
}

// Clamp limits values to [lo, hi].
func Clamp[T Number](lo, hi T) func(T) T {
	return func(v T) T {
		return min(max(v, lo), hi)
	}
}

// Abs returns the absolute value of v.
func Abs[T Signed | Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Narrow converts an integer to a smaller or differently signed integer type,
// failing instead of wrapping around.
func Narrow[F, T Integer](v F) (T, error) {
	out := T(v)
	if F(out) != v || (out < 0) != (v < 0) {
		var zero T
		return zero, narrowError(v, zero)
	}
	return out, nil
}
