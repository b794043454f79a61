package sanitizer

import "errors"

var (
	// ErrOutOfRange is returned when a value does not fit the target type.
	ErrOutOfRange = errors.New("value out of range")

	// ErrWrongAddressFamily is returned when an address parses but has the wrong IP version.
	ErrWrongAddressFamily = errors.New("wrong address family")
)
