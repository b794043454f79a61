package binder

import (
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// maxFormIndex bounds "key.N" indices so a request cannot force a huge slice.
const maxFormIndex = 1000

// decodeForm binds url-encoded values. Nested structs use dotted keys
// ("profile.name"), slices of structs use indexed keys ("addresses.0.city")
// and other slices take every value of a repeated key.
func decodeForm(data []byte, v any) error {
	values, err := url.ParseQuery(string(data))
	if err != nil {
		return err
	}

	used := make(map[string]bool, len(values))
	if err := bindForm(reflect.ValueOf(v).Elem(), "", values, used); err != nil {
		return err
	}

	var unknown []string
	for key := range values {
		if !used[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("unknown field %q", unknown[0])
	}
	return nil
}

func bindForm(rv reflect.Value, prefix string, values url.Values, used map[string]bool) error {
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := formName(sf)
		if skip {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if sf.Type.Kind() == reflect.Struct {
			if err := bindForm(field, key, values, used); err != nil {
				return err
			}
			continue
		}

		if sf.Type.Kind() == reflect.Slice && sf.Type.Elem().Kind() == reflect.Struct {
			n, err := formIndexLen(key, values)
			if err != nil {
				return err
			}
			if n == 0 {
				continue
			}
			out := reflect.MakeSlice(sf.Type, n, n)
			for j := range n {
				if err := bindForm(out.Index(j), key+"."+strconv.Itoa(j), values, used); err != nil {
					return err
				}
			}
			field.Set(out)
			continue
		}

		vals, ok := values[key]
		if !ok {
			continue
		}
		used[key] = true
		if err := setField(field, vals); err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
	}
	return nil
}

// formIndexLen returns one past the largest N among "key.N.*" form keys.
func formIndexLen(key string, values url.Values) (int, error) {
	n := 0
	for k := range values {
		rest, ok := strings.CutPrefix(k, key+".")
		if !ok {
			continue
		}
		segment, _, _ := strings.Cut(rest, ".")
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 {
			return 0, fmt.Errorf("field %s: invalid index %q", key, segment)
		}
		if i >= maxFormIndex {
			return 0, fmt.Errorf("field %s: index %d exceeds %d", key, i, maxFormIndex-1)
		}
		n = max(n, i+1)
	}
	return n, nil
}

// formName resolves the form key: form tag, then json tag, then the field name.
func formName(sf reflect.StructField) (string, bool) {
	for _, tag := range []string{"form", "json"} {
		v, ok := sf.Tag.Lookup(tag)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(v, ",")
		if name == "-" {
			return "", true
		}
		if name != "" {
			return name, false
		}
	}
	return sf.Name, false
}

func setField(field reflect.Value, vals []string) error {
	switch field.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setField(field.Elem(), vals)

	case reflect.Slice:
		out := reflect.MakeSlice(field.Type(), len(vals), len(vals))
		for i, s := range vals {
			if err := setScalar(out.Index(i), s); err != nil {
				return err
			}
		}
		field.Set(out)
		return nil
	}

	if len(vals) == 0 {
		return nil
	}
	return setScalar(field, vals[0])
}

func setScalar(field reflect.Value, s string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(s)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", s)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", s)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", s)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			switch strings.ToLower(s) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", s)
			}
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", field.Type())
	}
	return nil
}
