package schema

import (
	"fmt"
	"strconv"
)

const (
	// MetaField is the field and path used for struct-level (pre/post) failures.
	MetaField = "<meta>"

	// HiddenValue replaces the offending value of fields marked hidden.
	HiddenValue = "<hidden>"
)

// CauseKind tags the variant held by a Cause.
type CauseKind uint8

const (
	// CausePredicateFalse means the validator evaluated to false without an error.
	CausePredicateFalse CauseKind = iota + 1
	// CauseError means the validator returned an error.
	CauseError
)

func (k CauseKind) String() string {
	switch k {
	case CausePredicateFalse:
		return "predicate_false"
	case CauseError:
		return "error"
	default:
		return "unknown"
	}
}

// Cause is the reason a validate step failed.
// The zero value behaves like PredicateFalse so the field is always total.
type Cause struct {
	Kind CauseKind
	Err  error
}

// PredicateFalse returns the sentinel cause for validators returning false.
func PredicateFalse() Cause {
	return Cause{Kind: CausePredicateFalse, Err: ErrPredicateFalse}
}

// CausedBy wraps err as a cause. A nil err yields PredicateFalse.
func CausedBy(err error) Cause {
	if err == nil {
		return PredicateFalse()
	}
	return Cause{Kind: CauseError, Err: err}
}

// IsPredicateFalse reports whether the validator simply evaluated to false.
func (c Cause) IsPredicateFalse() bool {
	return c.Kind != CauseError
}

func (c Cause) Error() string {
	if c.Err == nil {
		return ErrPredicateFalse.Error()
	}
	return c.Err.Error()
}

func (c Cause) Unwrap() error {
	if c.Err == nil {
		return ErrPredicateFalse
	}
	return c.Err
}

// FieldFailure is recorded when a validate step returns false or errors.
type FieldFailure struct {
	Field    string
	Path     string
	Value    string
	Cause    Cause
	Message  string
	Expr     string
	TypeName string
	Location string
}

// Summary returns the message when present, otherwise the cause text.
func (f FieldFailure) Summary() string {
	if f.Message != "" {
		return f.Message
	}
	return f.Cause.Error()
}

// TransformFailure is recorded when a fallible transform returns an error.
type TransformFailure struct {
	Field      string
	Path       string
	Value      string
	Cause      error
	Message    string
	Expr       string
	SourceType string
	TargetType string
	Location   string
}

// Summary returns the message when present, otherwise the cause text.
func (f TransformFailure) Summary() string {
	if f.Message != "" {
		return f.Message
	}
	if f.Cause == nil {
		return "transform failed"
	}
	return f.Cause.Error()
}

func prefixPath(parent, path string) string {
	switch {
	case parent == "":
		return path
	case path == "":
		return parent
	default:
		return parent + "." + path
	}
}

// formatValue renders an offending value for diagnostics.
func formatValue(v any, display bool) string {
	if !display {
		return HiddenValue
	}
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%+v", v)
}
