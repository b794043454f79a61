package schema

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
)

// Builder collects the rules of one record pair and compiles them into a Schema.
// R is the raw record type, V the validated record type; both must be structs.
type Builder[R, V any] struct {
	name   string
	opts   []Option
	fields []fieldDecl
	hidden []string
	pre    []structCheck
	post   []structCheck
}

type fieldDecl struct {
	key      string
	ops      []Operation
	location string
}

type structCheck struct {
	op       Operation
	location string
}

// NewBuilder creates a builder for the schema called name.
func NewBuilder[R, V any](name string, opts ...Option) *Builder[R, V] {
	return &Builder[R, V]{
		name: name,
		opts: opts,
	}
}

// Field sets the operation chain of the field with the given key.
// Fields never passed to Field keep an empty chain.
func (b *Builder[R, V]) Field(key string, ops ...Operation) *Builder[R, V] {
	b.fields = append(b.fields, fieldDecl{
		key:      key,
		ops:      append([]Operation(nil), ops...),
		location: callerLocation(2),
	})
	return b
}

// Hide redacts the offending values of the given fields in every report.
func (b *Builder[R, V]) Hide(keys ...string) *Builder[R, V] {
	b.hidden = append(b.hidden, keys...)
	return b
}

// Pre adds struct-level checks run against the raw record before any field.
func (b *Builder[R, V]) Pre(ops ...Operation) *Builder[R, V] {
	loc := callerLocation(2)
	for _, op := range ops {
		b.pre = append(b.pre, structCheck{op: op, location: loc})
	}
	return b
}

// Post adds struct-level checks run against the assembled validated record.
func (b *Builder[R, V]) Post(ops ...Operation) *Builder[R, V] {
	loc := callerLocation(2)
	for _, op := range ops {
		b.post = append(b.post, structCheck{op: op, location: loc})
	}
	return b
}

// Build checks every declaration and returns the immutable schema.
// All definition mistakes are reported at once as *SchemaError values joined together.
func (b *Builder[R, V]) Build() (*Schema[R, V], error) {
	rawType := reflect.TypeFor[R]()
	validType := reflect.TypeFor[V]()

	var errs []error
	if rawType.Kind() != reflect.Struct {
		errs = append(errs, newSchemaError(b.name, "", ErrInvalidRecord, "raw record %s is a %s", rawType, rawType.Kind()))
	}
	if validType.Kind() != reflect.Struct {
		errs = append(errs, newSchemaError(b.name, "", ErrInvalidRecord, "validated record %s is a %s", validType, validType.Kind()))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	cfg := defaultConfig()
	for _, opt := range b.opts {
		opt(&cfg)
	}

	rawFields, err := b.indexFields(rawType)
	errs = append(errs, err...)
	validFields, err := b.indexFields(validType)
	errs = append(errs, err...)

	specs := make([]FieldSpec, 0, len(rawFields))
	byKey := make(map[string]int, len(rawFields))
	for _, rf := range recordFields(rawType) {
		if _, dup := byKey[rf.key]; dup {
			continue
		}
		vf, ok := validFields[rf.key]
		if !ok {
			errs = append(errs, newSchemaError(b.name, rf.key, ErrFieldArity, "no validated field for raw field %s", rf.name))
			continue
		}
		byKey[rf.key] = len(specs)
		specs = append(specs, FieldSpec{
			Key:        rf.key,
			Name:       rf.name,
			RawIndex:   rf.index,
			ValidIndex: vf.index,
			RawType:    rf.typ,
			FinalType:  vf.typ,
			Display:    true,
		})
	}
	for key, vf := range validFields {
		if _, ok := rawFields[key]; !ok {
			errs = append(errs, newSchemaError(b.name, key, ErrFieldArity, "no raw field for validated field %s", vf.name))
		}
	}

	declared := make(map[string]bool, len(b.fields))
	for _, d := range b.fields {
		idx, ok := byKey[d.key]
		if !ok {
			if _, known := rawFields[d.key]; !known {
				errs = append(errs, newSchemaError(b.name, d.key, ErrUnknownField, "declared at %s", d.location))
			}
			continue
		}
		if declared[d.key] {
			errs = append(errs, newSchemaError(b.name, d.key, ErrDuplicateField, "declared again at %s", d.location))
			continue
		}
		declared[d.key] = true
		specs[idx].Operations = d.ops
		specs[idx].Location = d.location
	}

	for _, key := range b.hidden {
		idx, ok := byKey[key]
		if !ok {
			errs = append(errs, newSchemaError(b.name, key, ErrUnknownField, "cannot hide unknown field"))
			continue
		}
		specs[idx].Display = false
	}

	for i := range specs {
		errs = append(errs, b.checkChain(&specs[i])...)
	}
	errs = append(errs, b.checkStruct("pre", b.pre, rawType)...)
	errs = append(errs, b.checkStruct("post", b.post, validType)...)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Schema[R, V]{
		name:      b.name,
		rawType:   rawType,
		validType: validType,
		fields:    specs,
		pre:       append([]structCheck(nil), b.pre...),
		post:      append([]structCheck(nil), b.post...),
		cfg:       cfg,
	}, nil
}

// MustBuild is like Build but panics on a definition error.
func (b *Builder[R, V]) MustBuild() *Schema[R, V] {
	s, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build schema: %v", err))
	}
	return s
}

// indexFields maps keys to fields, reporting keys used twice within one record.
func (b *Builder[R, V]) indexFields(t reflect.Type) (map[string]recordField, []error) {
	var errs []error
	out := make(map[string]recordField)
	for _, f := range recordFields(t) {
		if prev, ok := out[f.key]; ok {
			errs = append(errs, newSchemaError(b.name, f.key, ErrDuplicateField, "%s uses key for both %s and %s", t, prev.name, f.name))
			continue
		}
		out[f.key] = f
	}
	return out, errs
}

// checkChain walks the chain with the running type and verifies that every step
// accepts it and the final type fits the validated field.
func (b *Builder[R, V]) checkChain(f *FieldSpec) []error {
	var errs []error
	running := f.RawType
	for i, op := range f.Operations {
		if op.kind == 0 || (op.check == nil && op.apply == nil && op.nested == nil) {
			errs = append(errs, newSchemaError(b.name, f.Key, ErrInvalidCheck, "step %d is not a constructed operation", i))
			return errs
		}
		if !op.accepts(running) {
			errs = append(errs, newSchemaError(b.name, f.Key, ErrTypeMismatch,
				"step %d %q expects %s, got %s", i, op.expr, typeName(op.from), running))
			return errs
		}
		if op.kind != KindValidate && op.to != nil {
			running = op.to
		}
	}
	if !running.AssignableTo(f.FinalType) {
		errs = append(errs, newSchemaError(b.name, f.Key, ErrTypeMismatch,
			"chain ends with %s, validated field is %s", running, f.FinalType))
	}
	return errs
}

func (b *Builder[R, V]) checkStruct(phase string, checks []structCheck, record reflect.Type) []error {
	var errs []error
	for i, c := range checks {
		if c.op.kind != KindValidate || c.op.check == nil {
			errs = append(errs, newSchemaError(b.name, "", ErrInvalidCheck,
				"%s check %d is a %s operation, only validators are allowed", phase, i, c.op.kind))
			continue
		}
		if !c.op.accepts(record) {
			errs = append(errs, newSchemaError(b.name, "", ErrInvalidCheck,
				"%s check %d %q expects %s, record is %s", phase, i, c.op.expr, typeName(c.op.from), record))
		}
	}
	return errs
}

func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
