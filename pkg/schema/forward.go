package schema

import (
	"reflect"
	"strconv"
)

// Nested is a schema that can be forwarded to from a parent field.
// Every *Schema[R, V] implements it.
type Nested interface {
	Name() string
	RawType() reflect.Type
	ValidType() reflect.Type
	ValidateValue(raw any) (any, error)
}

// Forward delegates the field to the nested schema. The field's raw type must be
// the nested raw type and the result has the nested validated type.
func Forward(n Nested) Operation {
	return Operation{
		kind:   KindForward,
		from:   n.RawType(),
		to:     n.ValidType(),
		expr:   "forward(" + n.Name() + ")",
		nested: n,
	}
}

// ForwardEach delegates every element of a slice field to the nested schema.
// Element failures are reported under "<field>.<index>".
func ForwardEach(n Nested) Operation {
	return Operation{
		kind:   KindForward,
		from:   reflect.SliceOf(n.RawType()),
		to:     reflect.SliceOf(n.ValidType()),
		expr:   "forward_each(" + n.Name() + ")",
		nested: n,
		each:   true,
	}
}

func (f *FieldSpec) forward(op Operation, v any, errs *ValidationError) (any, bool) {
	if !op.each {
		out, err := op.nested.ValidateValue(v)
		if err != nil {
			f.recordNested(f.Key, op, v, err, errs)
			return nil, false
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.IsNil() {
		return reflect.Zero(op.to).Interface(), true
	}

	out := reflect.MakeSlice(op.to, rv.Len(), rv.Len())
	ok := true
	for i := range rv.Len() {
		elem := rv.Index(i).Interface()
		res, err := op.nested.ValidateValue(elem)
		if err != nil {
			f.recordNested(f.Key+"."+strconv.Itoa(i), op, elem, err, errs)
			ok = false
			continue
		}
		setValue(out.Index(i), res)
	}
	if !ok {
		return nil, false
	}
	return out.Interface(), true
}

// recordNested splices a nested report under path, or records a plain error
// as a transform failure. A hidden field hides every value of the nested report.
func (f *FieldSpec) recordNested(path string, op Operation, v any, err error, errs *ValidationError) {
	if verr, ok := AsValidationError(err); ok {
		if !f.Display {
			verr = verr.redacted()
		}
		errs.Merge(path, verr)
		return
	}
	tf := f.transformFailure(op, v, err)
	tf.Path = path
	if op.each {
		tf.SourceType = typeName(op.nested.RawType())
		tf.TargetType = typeName(op.nested.ValidType())
	}
	errs.PushTransform(tf)
}
