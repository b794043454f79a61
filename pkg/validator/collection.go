package validator

// All reports whether every element satisfies pred. An empty slice passes.
func All[T any](pred func(T) bool) func([]T) bool {
	return func(items []T) bool {
		for _, item := range items {
			if !pred(item) {
				return false
			}
		}
		return true
	}
}

// TryAll is All for fallible predicates; the first error stops the walk.
func TryAll[T any](pred func(T) (bool, error)) func([]T) (bool, error) {
	return func(items []T) (bool, error) {
		for _, item := range items {
			ok, err := pred(item)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// AllKeys reports whether every map key satisfies pred.
func AllKeys[K comparable, V any](pred func(K) bool) func(map[K]V) bool {
	return func(m map[K]V) bool {
		for k := range m {
			if !pred(k) {
				return false
			}
		}
		return true
	}
}

// AllValues reports whether every map value satisfies pred.
func AllValues[K comparable, V any](pred func(V) bool) func(map[K]V) bool {
	return func(m map[K]V) bool {
		for _, v := range m {
			if !pred(v) {
				return false
			}
		}
		return true
	}
}

func NotEmpty[T any](items []T) bool {
	return len(items) > 0
}

func MinItems[T any](n int) func([]T) bool {
	return func(items []T) bool { return len(items) >= n }
}

func MaxItems[T any](n int) func([]T) bool {
	return func(items []T) bool { return len(items) <= n }
}

// Unique reports whether no element appears twice.
func Unique[T comparable](items []T) bool {
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return false
		}
		seen[item] = struct{}{}
	}
	return true
}
