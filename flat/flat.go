// Package flat provides flat views of nested data: config structs are
// flattened into a list of leaf fields and parsed documents are flattened
// into string key/value tables.
package flat

import (
	"errors"
	"reflect"
)

// ErrUnexpectedType is returned when View sees an unsupported type.
var ErrUnexpectedType = errors.New("unexpected type, expecting a pointer to struct")

// Fields is a slice of Field.
type Fields []Field

// Field describes a leaf field of a flattened struct.
type Field interface {
	// Name is the dotted path of the field, e.g. "Redis.Host".
	Name() string
	// EnvName is the SCREAMING_SNAKE form of Name, e.g. "REDIS_HOST".
	EnvName() string
	Tag(key string) (string, bool)

	String() string
	Set(value string) error
	IsZero() bool

	FieldValue() reflect.Value
	FieldType() reflect.StructField
}

// View provides a flat view of the provided struct as a list of fields.
// Sub-struct fields are prefixed with the struct field name followed by a dot,
// this is repeated for each nested level. Embedded structs add no prefix.
// Nil struct pointers are allocated and walked like struct values. Fields
// of kinds with no text form, such as maps and channels, are skipped.
func View(s any) (Fields, error) {
	rs, err := unwrap(s)
	if err != nil {
		return nil, err
	}

	return walkStruct("", rs)
}

func walkStruct(prefix string, rs reflect.Value) (Fields, error) {
	fields := Fields{}

	ts := rs.Type()
	for i := range rs.NumField() {
		fv := rs.Field(i)
		ft := ts.Field(i)

		if !ft.IsExported() {
			continue
		}

		if isStructPtr(fv) && !isTextUnmarshaler(fv) {
			if fv.IsNil() {
				if !fv.CanSet() {
					continue
				}
				fv.Set(reflect.New(fv.Type().Elem()))
			}
			fv = fv.Elem()
		}

		if !isTextUnmarshaler(fv) && unsupported(fv.Kind()) {
			continue
		}

		if fv.Kind() == reflect.Struct && !isTextUnmarshaler(fv) {
			structPrefix := prefix
			if !ft.Anonymous {
				structPrefix = join(prefix, ft.Name)
			}

			fs, err := walkStruct(structPrefix, fv)
			if err != nil {
				return nil, err
			}
			fields = append(fields, fs...)
			continue
		}

		name := ft.Name
		if override, ok := ft.Tag.Lookup("xenv"); ok && override != "" {
			name = override
		}

		fields = append(fields, &field{
			name:      join(prefix, name),
			tag:       ft.Tag,
			field:     fv,
			fieldType: ft,
		})
	}

	return fields, nil
}

func isStructPtr(v reflect.Value) bool {
	return v.Kind() == reflect.Ptr && v.Type().Elem().Kind() == reflect.Struct
}

// unsupported reports kinds that have no text form a variable could hold.
func unsupported(k reflect.Kind) bool {
	switch k {
	case reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer, reflect.Array, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func unwrap(s any) (reflect.Value, error) {
	rs := reflect.ValueOf(s)

	if k := rs.Kind(); k != reflect.Ptr || rs.IsNil() {
		return rs, ErrUnexpectedType
	}

	rs = reflect.Indirect(rs)

	if rs.Kind() == reflect.Interface {
		rs = rs.Elem()
	}

	rs = reflect.Indirect(rs)

	if rs.Kind() != reflect.Struct {
		return rs, ErrUnexpectedType
	}

	return rs, nil
}
