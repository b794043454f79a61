package schema

import (
	"fmt"
	"reflect"
)

// Kind tags the variant held by an Operation.
type Kind uint8

const (
	KindValidate Kind = iota + 1
	KindTransform
	KindForward
)

func (k Kind) String() string {
	switch k {
	case KindValidate:
		return "validate"
	case KindTransform:
		return "transform"
	case KindForward:
		return "forward"
	default:
		return "unknown"
	}
}

// Operation is one step of a field chain, or a struct-level check.
// Operations are immutable values; With* methods return modified copies.
type Operation struct {
	kind     Kind
	fallible bool
	from     reflect.Type
	to       reflect.Type
	expr     string
	message  string
	check    func(any) (bool, error)
	apply    func(any) (any, error)
	nested   Nested
	each     bool
}

func (o Operation) Kind() Kind { return o.kind }
func (o Operation) Fallible() bool { return o.fallible }
func (o Operation) From() reflect.Type { return o.from }
func (o Operation) To() reflect.Type { return o.to }
func (o Operation) Expr() string { return o.expr }
func (o Operation) Message() string { return o.message }

// WithMessage attaches a human-readable message reported on failure.
func (o Operation) WithMessage(msg string) Operation {
	o.message = msg
	return o
}

// Check builds an infallible validator over T.
func Check[T any](expr string, fn func(T) bool) Operation {
	t := reflect.TypeFor[T]()
	return Operation{
		kind: KindValidate,
		from: t,
		to:   t,
		expr: expr,
		check: func(v any) (bool, error) {
			return fn(cast[T](v)), nil
		},
	}
}

// TryCheck builds a fallible validator over T. A non-nil error is recorded as the cause.
func TryCheck[T any](expr string, fn func(T) (bool, error)) Operation {
	t := reflect.TypeFor[T]()
	return Operation{
		kind:     KindValidate,
		fallible: true,
		from:     t,
		to:       t,
		expr:     expr,
		check: func(v any) (bool, error) {
			return fn(cast[T](v))
		},
	}
}

// Map builds an infallible transform from F to T.
func Map[F, T any](expr string, fn func(F) T) Operation {
	return Operation{
		kind: KindTransform,
		from: reflect.TypeFor[F](),
		to:   reflect.TypeFor[T](),
		expr: expr,
		apply: func(v any) (any, error) {
			return fn(cast[F](v)), nil
		},
	}
}

// TryMap builds a fallible transform from F to T.
func TryMap[F, T any](expr string, fn func(F) (T, error)) Operation {
	return Operation{
		kind:     KindTransform,
		fallible: true,
		from:     reflect.TypeFor[F](),
		to:       reflect.TypeFor[T](),
		expr:     expr,
		apply: func(v any) (any, error) {
			out, err := fn(cast[F](v))
			if err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

// evalCheck runs the predicate, turning a panic into an error.
func (o Operation) evalCheck(v any) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("%w: %v", ErrOperationPanicked, r)
		}
	}()
	return o.check(v)
}

// evalApply runs the transform, turning a panic into an error.
func (o Operation) evalApply(v any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrOperationPanicked, r)
		}
	}()
	return o.apply(v)
}

// accepts reports whether a value of the running type can be handed to the step.
func (o Operation) accepts(running reflect.Type) bool {
	if o.from == nil || o.from == running {
		return true
	}
	return o.from.Kind() == reflect.Interface && running.Implements(o.from)
}

func cast[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
