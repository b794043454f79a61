package schema

import (
	"fmt"
	"io"
	"strings"
)

// errWriter keeps the first write error so rendering code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (f FieldFailure) writeFull(ew *errWriter) {
	if f.Message != "" {
		ew.printf("Validate error: %s\n", f.Message)
	} else {
		ew.printf("Validate error:\n")
	}
	ew.printf("Cause: %s\n", f.Cause.Error())
	ew.printf("Value: %s: %s = %s\n", f.Field, f.TypeName, f.Value)
	ew.printf("Validator: %s\n", f.Expr)
	ew.printf("Path: %s\n", f.Path)
	if f.Location != "" {
		ew.printf("Defined at: %s\n", f.Location)
	}
	ew.printf("\n")
}

func (f TransformFailure) writeFull(ew *errWriter) {
	if f.Message != "" {
		ew.printf("Transform error: %s\n", f.Message)
	} else {
		ew.printf("Transform error:\n")
	}
	cause := "<none>"
	if f.Cause != nil {
		cause = f.Cause.Error()
	}
	ew.printf("Cause: %s\n", cause)
	ew.printf("Value: %s: %s = %s\n", f.Field, f.SourceType, f.Value)
	ew.printf("Transformer: (%s => %s) %s\n", f.SourceType, f.TargetType, f.Expr)
	ew.printf("Path: %s\n", f.Path)
	if f.Location != "" {
		ew.printf("Defined at: %s\n", f.Location)
	}
	ew.printf("\n")
}

// WriteFull writes every failure with cause, value, rule text and path.
func (e *ValidationError) WriteFull(w io.Writer) error {
	ew := &errWriter{w: w}
	for _, f := range e.FieldFailures {
		f.writeFull(ew)
	}
	for _, f := range e.TransformFailures {
		f.writeFull(ew)
	}
	return ew.err
}

// WriteBrief writes one "path: message-or-cause" line per failure. Like
// every rendering it lists validate failures before transform failures, so
// lines follow declaration order only within each group.
func (e *ValidationError) WriteBrief(w io.Writer) error {
	ew := &errWriter{w: w}
	for _, f := range e.FieldFailures {
		ew.printf("%s: %s\n", f.Path, f.Summary())
	}
	for _, f := range e.TransformFailures {
		ew.printf("%s: %s\n", f.Path, f.Summary())
	}
	return ew.err
}

// WriteHumanReadable writes a numbered list meant for end users.
// Offending values are never included.
func (e *ValidationError) WriteHumanReadable(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("Some of the values are invalid:\n\n")
	n := 0
	for _, f := range e.FieldFailures {
		n++
		ew.printf("%-4s%s: %s\n", fmt.Sprintf("%d.", n), f.Path, f.Summary())
	}
	for _, f := range e.TransformFailures {
		n++
		ew.printf("%-4s%s: %s\n", fmt.Sprintf("%d.", n), f.Path, f.Summary())
	}
	return ew.err
}

// Full renders WriteFull into a string.
func (e *ValidationError) Full() string {
	var sb strings.Builder
	_ = e.WriteFull(&sb)
	return sb.String()
}

// Brief renders WriteBrief into a string.
func (e *ValidationError) Brief() string {
	var sb strings.Builder
	_ = e.WriteBrief(&sb)
	return sb.String()
}

// HumanReadable renders WriteHumanReadable into a string.
func (e *ValidationError) HumanReadable() string {
	var sb strings.Builder
	_ = e.WriteHumanReadable(&sb)
	return sb.String()
}
