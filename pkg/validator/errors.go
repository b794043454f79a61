package validator

import "errors"

var (
	// ErrInvalidPattern is returned by Matches when the pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)
