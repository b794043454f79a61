package schema

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"golang.org/x/sync/errgroup"
)

// Schema is the compiled, immutable validation pipeline for one record pair.
// It is safe for concurrent use.
type Schema[R, V any] struct {
	name      string
	rawType   reflect.Type
	validType reflect.Type
	fields    []FieldSpec
	pre       []structCheck
	post      []structCheck
	cfg       config
}

// Name returns the schema name given to NewBuilder.
func (s *Schema[R, V]) Name() string { return s.name }

// RawType returns the reflect type of R.
func (s *Schema[R, V]) RawType() reflect.Type { return s.rawType }

// ValidType returns the reflect type of V.
func (s *Schema[R, V]) ValidType() reflect.Type { return s.validType }

// Fields returns a copy of the compiled field plans in declaration order.
func (s *Schema[R, V]) Fields() []FieldSpec {
	out := make([]FieldSpec, len(s.fields))
	for i, f := range s.fields {
		f.Operations = append([]Operation(nil), f.Operations...)
		out[i] = f
	}
	return out
}

// Validate runs the pre, field and post phases against raw.
// On failure the error is the *ValidationError of the first failing phase and
// the returned record is the zero value.
func (s *Schema[R, V]) Validate(raw R) (V, error) {
	start := time.Now()
	out, state, phase, verr := s.run(raw)
	s.report(Outcome{
		Schema:      s.name,
		State:       state,
		FailedPhase: phase,
		Failures:    verr.Len(),
		Duration:    time.Since(start),
	})
	if err := verr.Check(); err != nil {
		var zero V
		return zero, err
	}
	return out, nil
}

// ValidateValue is the type-erased form of Validate used by forwarding.
// raw must be an R or a non-nil *R.
func (s *Schema[R, V]) ValidateValue(raw any) (any, error) {
	switch v := raw.(type) {
	case R:
		return s.Validate(v)
	case *R:
		if v != nil {
			return s.Validate(*v)
		}
	}
	return nil, fmt.Errorf("%w: schema %q wants %s, got %T", ErrRawTypeMismatch, s.name, s.rawType, raw)
}

func (s *Schema[R, V]) run(raw R) (V, State, Phase, *ValidationError) {
	var zero V

	if errs := s.checkStruct(s.pre, raw); !errs.IsEmpty() {
		return zero, StateFailed, PhasePre, errs
	}

	values, errs := s.runFields(reflect.ValueOf(raw))
	if !errs.IsEmpty() {
		return zero, StateFailed, PhaseFields, errs
	}

	out := reflect.New(s.validType).Elem()
	for i, f := range s.fields {
		setValue(out.Field(f.ValidIndex), values[i])
	}
	validated := out.Interface().(V)

	if errs := s.checkStruct(s.post, validated); !errs.IsEmpty() {
		return zero, StateFailed, PhasePost, errs
	}

	return validated, StatePostChecked, 0, nil
}

// runFields runs every chain exhaustively. In parallel mode each field writes
// to its own aggregate and the locals are joined in declaration order.
func (s *Schema[R, V]) runFields(rv reflect.Value) ([]any, *ValidationError) {
	values := make([]any, len(s.fields))
	errs := NewValidationError()

	if s.cfg.workers < 2 || len(s.fields) < 2 {
		for i := range s.fields {
			f := &s.fields[i]
			values[i], _ = f.run(rv.Field(f.RawIndex).Interface(), errs)
		}
		return values, errs
	}

	locals := make([]*ValidationError, len(s.fields))
	g := new(errgroup.Group)
	g.SetLimit(s.cfg.workers)
	for i := range s.fields {
		g.Go(func() error {
			f := &s.fields[i]
			local := NewValidationError()
			values[i], _ = f.run(rv.Field(f.RawIndex).Interface(), local)
			locals[i] = local
			return nil
		})
	}
	_ = g.Wait()

	for _, local := range locals {
		errs.Append(local)
	}
	return values, errs
}

// checkStruct runs struct-level checks exhaustively, recording failures under MetaField.
func (s *Schema[R, V]) checkStruct(checks []structCheck, record any) *ValidationError {
	errs := NewValidationError()
	for _, c := range checks {
		ok, err := c.op.evalCheck(record)
		if ok && err == nil {
			continue
		}
		errs.PushField(FieldFailure{
			Field:    MetaField,
			Path:     MetaField,
			Value:    MetaField,
			Cause:    CausedBy(err),
			Message:  c.op.message,
			Expr:     c.op.expr,
			TypeName: reflect.TypeOf(record).String(),
			Location: c.location,
		})
	}
	return errs
}

func (s *Schema[R, V]) report(o Outcome) {
	if !o.Succeeded() {
		s.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "validation failed",
			slog.String("schema", o.Schema),
			slog.String("phase", o.FailedPhase.String()),
			slog.Int("failures", o.Failures),
		)
	}
	for _, obs := range s.cfg.observers {
		obs.ObserveValidation(o)
	}
}
