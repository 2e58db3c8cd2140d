package flat

import (
	"encoding"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// Section returns the table named section of a parsed document with every
// value rendered as a string. A missing section, or one that is not a table,
// yields an empty map.
func Section(doc map[string]any, section string) map[string]string {
	raw, ok := doc[section]
	if !ok {
		return map[string]string{}
	}

	table, ok := Table(raw)
	if !ok {
		return map[string]string{}
	}

	return Strings(table)
}

// Strings renders every value of table with Stringify.
func Strings(table map[string]any) map[string]string {
	out := make(map[string]string, len(table))
	for key, value := range table {
		out[key] = Stringify(value)
	}
	return out
}

// Table converts the map shapes produced by the supported decoders into a
// map[string]any. It reports false when v is not a table.
func Table(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for key, value := range t {
			out[fmt.Sprint(key)] = value
		}
		return out, true
	case map[string]string:
		out := make(map[string]any, len(t))
		for key, value := range t {
			out[key] = value
		}
		return out, true
	}

	return nil, false
}

// Stringify renders a decoded document value as a string. Scalars use their
// shortest text form, arrays and tables are encoded as JSON.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.FormatInt(int64(t), 10)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return formatFloat(float64(t), 32)
	case float64:
		return formatFloat(t, 64)
	case json.Number:
		return t.String()
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err == nil {
			return string(b)
		}
	case fmt.Stringer:
		return t.String()
	}

	b, err := json.Marshal(normalize(v))
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(b)
}

// formatFloat uses plain decimal notation for magnitudes in [1e-6, 1e21)
// and exponent notation outside it. Whole numbers drop the fraction.
func formatFloat(f float64, bits int) string {
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

// normalize rewrites nested map[any]any values so they can be JSON encoded.
func normalize(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalize(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for key, value := range t {
			out[key] = normalize(value)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for key, value := range t {
			out[fmt.Sprint(key)] = normalize(value)
		}
		return out
	}

	return v
}
