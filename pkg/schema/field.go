package schema

import (
	"reflect"
	"strings"
)

// FieldSpec is the compiled plan for one record field.
type FieldSpec struct {
	Key        string
	Name       string
	RawIndex   int
	ValidIndex int
	Location   string
	RawType    reflect.Type
	FinalType  reflect.Type
	Operations []Operation
	Display    bool
}

// run executes the chain against v. The first failing step records exactly one
// failure into errs and aborts this field only.
func (f *FieldSpec) run(v any, errs *ValidationError) (any, bool) {
	cur := v
	curType := f.RawType

	for _, op := range f.Operations {
		switch op.kind {
		case KindValidate:
			ok, err := op.evalCheck(cur)
			if err != nil || !ok {
				errs.PushField(f.fieldFailure(op, cur, curType, CausedBy(err)))
				return nil, false
			}

		case KindTransform:
			next, err := op.evalApply(cur)
			if err != nil {
				errs.PushTransform(f.transformFailure(op, cur, err))
				return nil, false
			}
			cur = next

		case KindForward:
			next, ok := f.forward(op, cur, errs)
			if !ok {
				return nil, false
			}
			cur = next
		}

		if op.kind != KindValidate && op.to != nil {
			curType = op.to
		}
	}

	return cur, true
}

func (f *FieldSpec) fieldFailure(op Operation, v any, t reflect.Type, cause Cause) FieldFailure {
	return FieldFailure{
		Field:    f.Key,
		Path:     f.Key,
		Value:    formatValue(v, f.Display),
		Cause:    cause,
		Message:  op.message,
		Expr:     op.expr,
		TypeName: typeName(t),
		Location: f.Location,
	}
}

func (f *FieldSpec) transformFailure(op Operation, v any, err error) TransformFailure {
	return TransformFailure{
		Field:      f.Key,
		Path:       f.Key,
		Value:      formatValue(v, f.Display),
		Cause:      err,
		Message:    op.message,
		Expr:       op.expr,
		SourceType: typeName(op.from),
		TargetType: typeName(op.to),
		Location:   f.Location,
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<unknown>"
	}
	return t.String()
}

// setValue stores v into dst; nil leaves the zero value of dst's type.
func setValue(dst reflect.Value, v any) {
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return
	}
	dst.Set(reflect.ValueOf(v))
}

type recordField struct {
	key   string
	name  string
	index int
	typ   reflect.Type
}

// recordFields lists the exported fields of a struct type in declaration order.
func recordFields(t reflect.Type) []recordField {
	fields := make([]recordField, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fields = append(fields, recordField{
			key:   fieldKey(sf),
			name:  sf.Name,
			index: i,
			typ:   sf.Type,
		})
	}
	return fields
}

// fieldKey resolves the public key of a field: the `valid` tag, then the name
// part of the `json` tag, then the Go field name.
func fieldKey(sf reflect.StructField) string {
	for _, tag := range []string{"valid", "json"} {
		if v, ok := sf.Tag.Lookup(tag); ok {
			name, _, _ := strings.Cut(v, ",")
			if name != "" && name != "-" {
				return name
			}
		}
	}
	return sf.Name
}
