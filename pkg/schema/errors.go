package schema

import (
	"errors"
	"fmt"
)

// Runtime sentinels.
var (
	// ErrPredicateFalse is the cause recorded when a validator simply returns false.
	ErrPredicateFalse = errors.New("validate expression evaluated to false")

	// ErrOperationPanicked wraps a panic raised by a user-supplied predicate or transform.
	ErrOperationPanicked = errors.New("operation panicked")

	// ErrRawTypeMismatch is returned by ValidateValue when the raw value has the wrong type.
	ErrRawTypeMismatch = errors.New("raw value has unexpected type")
)

// Construction-time sentinels. They are always wrapped in a *SchemaError.
var (
	ErrInvalidRecord  = errors.New("record type must be a struct")
	ErrFieldArity     = errors.New("raw and validated records declare different fields")
	ErrDuplicateField = errors.New("field declared more than once")
	ErrUnknownField   = errors.New("unknown field")
	ErrTypeMismatch   = errors.New("operation types do not compose")
	ErrInvalidCheck   = errors.New("invalid struct-level check")
)

// SchemaError describes a schema definition mistake detected by Builder.Build.
// It is an author error, never caused by runtime input.
type SchemaError struct {
	Schema string
	Field  string
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema %q: field %q: %v: %s", e.Schema, e.Field, e.Err, e.Reason)
	}
	return fmt.Sprintf("schema %q: %v: %s", e.Schema, e.Err, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func newSchemaError(schema, field string, err error, format string, args ...any) *SchemaError {
	return &SchemaError{
		Schema: schema,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}

// IsSchemaError reports whether err contains a schema definition error.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
