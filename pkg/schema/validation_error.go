package schema

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
)

// ValidationError aggregates every failure found during one validation phase.
// An empty aggregate means "no error"; Check is the only decision point.
type ValidationError struct {
	FieldFailures     []FieldFailure
	TransformFailures []TransformFailure
}

// NewValidationError creates an empty aggregate.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// PushField appends a validate failure.
func (e *ValidationError) PushField(f FieldFailure) {
	e.FieldFailures = append(e.FieldFailures, f)
}

// PushTransform appends a transform failure.
func (e *ValidationError) PushTransform(f TransformFailure) {
	e.TransformFailures = append(e.TransformFailures, f)
}

// Merge appends every failure of other with parent prefixed onto its path.
func (e *ValidationError) Merge(parent string, other *ValidationError) {
	if other == nil {
		return
	}
	for _, f := range other.FieldFailures {
		f.Path = prefixPath(parent, f.Path)
		e.FieldFailures = append(e.FieldFailures, f)
	}
	for _, f := range other.TransformFailures {
		f.Path = prefixPath(parent, f.Path)
		e.TransformFailures = append(e.TransformFailures, f)
	}
}

// redacted returns a copy of e with every offending value replaced by HiddenValue.
func (e *ValidationError) redacted() *ValidationError {
	out := &ValidationError{
		FieldFailures:     slices.Clone(e.FieldFailures),
		TransformFailures: slices.Clone(e.TransformFailures),
	}
	for i := range out.FieldFailures {
		out.FieldFailures[i].Value = HiddenValue
	}
	for i := range out.TransformFailures {
		out.TransformFailures[i].Value = HiddenValue
	}
	return out
}

// Append joins other into e without touching paths.
func (e *ValidationError) Append(other *ValidationError) {
	e.Merge("", other)
}

// Check returns nil when the aggregate is empty, otherwise the aggregate itself.
func (e *ValidationError) Check() error {
	if e == nil || e.IsEmpty() {
		return nil
	}
	return e
}

// Len returns the total number of failures.
func (e *ValidationError) Len() int {
	if e == nil {
		return 0
	}
	return len(e.FieldFailures) + len(e.TransformFailures)
}

// IsEmpty reports whether the aggregate holds no failures.
func (e *ValidationError) IsEmpty() bool {
	return e.Len() == 0
}

// Paths returns the distinct failing paths, validate failures first.
func (e *ValidationError) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	for _, f := range e.FieldFailures {
		add(f.Path)
	}
	for _, f := range e.TransformFailures {
		add(f.Path)
	}
	return paths
}

// Has reports whether any failure is recorded for path.
func (e *ValidationError) Has(path string) bool {
	for _, f := range e.FieldFailures {
		if f.Path == path {
			return true
		}
	}
	for _, f := range e.TransformFailures {
		if f.Path == path {
			return true
		}
	}
	return false
}

// Error lists every failure on one line, validate failures first.
func (e *ValidationError) Error() string {
	if e.IsEmpty() {
		return "validation failed"
	}

	parts := make([]string, 0, e.Len())
	for _, f := range e.FieldFailures {
		parts = append(parts, f.Path+": "+f.Summary())
	}
	for _, f := range e.TransformFailures {
		parts = append(parts, f.Path+": "+f.Summary())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes every underlying cause to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, e.Len())
	for _, f := range e.FieldFailures {
		errs = append(errs, f.Cause)
	}
	for _, f := range e.TransformFailures {
		if f.Cause != nil {
			errs = append(errs, f.Cause)
		}
	}
	return errs
}

// FailureDetail is the flattened, transport-friendly view of one failure.
type FailureDetail struct {
	Kind    string `json:"kind"`
	Field   string `json:"field"`
	Path    string `json:"path"`
	Message string `json:"message"`
	Rule    string `json:"rule,omitempty"`
	Type    string `json:"type,omitempty"`
}

// Details flattens the aggregate. Validate failures come first, then
// transform failures, each group in declaration order; a transform failure
// of an earlier field is therefore listed after a check failure of a later one.
func (e *ValidationError) Details() []FailureDetail {
	details := make([]FailureDetail, 0, e.Len())
	for _, f := range e.FieldFailures {
		details = append(details, FailureDetail{
			Kind:    KindValidate.String(),
			Field:   f.Field,
			Path:    f.Path,
			Message: f.Summary(),
			Rule:    f.Expr,
			Type:    f.TypeName,
		})
	}
	for _, f := range e.TransformFailures {
		details = append(details, FailureDetail{
			Kind:    KindTransform.String(),
			Field:   f.Field,
			Path:    f.Path,
			Message: f.Summary(),
			Rule:    f.Expr,
			Type:    f.SourceType + " => " + f.TargetType,
		})
	}
	return details
}

// ByPath groups failure summaries by path.
func (e *ValidationError) ByPath() map[string][]string {
	out := make(map[string][]string, e.Len())
	for _, d := range e.Details() {
		out[d.Path] = append(out[d.Path], d.Message)
	}
	return out
}

// MarshalJSON encodes the aggregate as {"failures": Details()}.
func (e *ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Failures []FailureDetail `json:"failures"`
	}{
		Failures: e.Details(),
	})
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) && verr != nil {
		return verr, true
	}
	return nil, false
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}
