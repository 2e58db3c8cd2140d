package flat

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var _ Field = (*field)(nil)

var (
	textUnmarshalerType = reflect.TypeOf(new(encoding.TextUnmarshaler)).Elem()
	durationType        = reflect.TypeOf(time.Duration(0))
)

type field struct {
	name      string
	tag       reflect.StructTag
	field     reflect.Value
	fieldType reflect.StructField
}

func (f *field) Name() string {
	return f.name
}

// EnvName returns the name of the environment variable.
func (f *field) EnvName() string {
	return EnvName(f.name)
}

func (f *field) Tag(key string) (string, bool) {
	return f.tag.Lookup(key)
}

// String returns the current value of the field in the text form Set accepts.
func (f *field) String() string {
	return valueString(f.field)
}

func (f *field) IsZero() bool {
	return f.field.IsValid() && f.field.IsZero()
}

// FieldValue is a field in a struct.
func (f *field) FieldValue() reflect.Value {
	return f.field
}

// FieldType is a field in a struct.
func (f *field) FieldType() reflect.StructField {
	return f.fieldType
}

func (f *field) Set(value string) error {
	if !f.field.CanSet() {
		return fmt.Errorf("field %s is not settable", f.name)
	}

	if isTextUnmarshaler(f.field) {
		return setText(f.field, value)
	}

	switch f.field.Kind() {
	case reflect.Slice:
		return f.setSlice(value)
	case reflect.Ptr:
		if f.field.IsNil() {
			f.field.Set(reflect.New(f.field.Type().Elem()))
		}
		return setScalar(f.field.Elem(), value)
	default:
		return setScalar(f.field, value)
	}
}

func (f *field) setSlice(value string) error {
	t := f.field.Type()

	if value == "" {
		f.field.Set(reflect.MakeSlice(t, 0, 0))
		return nil
	}

	values := strings.Split(value, ",")
	slice := reflect.MakeSlice(t, len(values), len(values))

	for i, value := range values {
		if err := setScalar(slice.Index(i), strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	f.field.Set(slice)
	return nil
}

func isTextUnmarshaler(v reflect.Value) bool {
	t := v.Type()
	if t.Implements(textUnmarshalerType) {
		return true
	}
	return v.CanAddr() && reflect.PointerTo(t).Implements(textUnmarshalerType)
}

func setText(v reflect.Value, value string) error {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(value))
	}

	if v.Type().Implements(textUnmarshalerType) {
		return v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(value))
	}

	return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(value))
}

func setScalar(v reflect.Value, value string) error {
	if v.Type() == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(value, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(value, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		fl, err := strconv.ParseFloat(value, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(fl)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}

	return nil
}

// valueString renders v the way Set expects to read it back.
func valueString(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		if m, ok := v.Interface().(encoding.TextMarshaler); ok {
			b, err := m.MarshalText()
			if err == nil {
				return string(b)
			}
		}
		return valueString(v.Elem())
	}

	if v.CanInterface() {
		if m, ok := v.Interface().(encoding.TextMarshaler); ok {
			b, err := m.MarshalText()
			if err == nil {
				return string(b)
			}
		}
	}

	if v.Type() == durationType {
		return time.Duration(v.Int()).String()
	}

	if v.Kind() == reflect.Slice {
		parts := make([]string, v.Len())
		for i := range v.Len() {
			parts[i] = valueString(v.Index(i))
		}
		return strings.Join(parts, ",")
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits())
	}

	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}

	return ""
}
