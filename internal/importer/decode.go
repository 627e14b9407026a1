package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"json-importer/internal/jsonvalue"
	"json-importer/internal/rules"
	"json-importer/jsontype"
)

var (
	errNull     = errors.New("null value in a non-nullable field")
	errOverflow = errors.New("value overflows the field type")
)

var objectType = reflect.TypeFor[jsonvalue.Object]()

// decodeField decodes a JSON value into dst, which must be addressable.
// A nil value leaves dst untouched.
func decodeField(dst reflect.Value, v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(normalize),
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           dst.Addr().Interface(),
	})
	if err != nil {
		return err
	}

	return dec.Decode(v)
}

// normalize converts decoded JSON values into the exact Go representation of
// the target kind, failing when the target cannot hold the value.
func normalize(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fitInt(data, to)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fitUint(data, to)
	case reflect.Float32, reflect.Float64:
		return fitFloat(data, to)
	case reflect.Map:
		if m, ok := toMap(data); ok {
			return m, nil
		}
	case reflect.Struct, reflect.Pointer:
		if to != objectType && to != objectPtrType {
			break
		}

		if obj, ok := toObject(data); ok {
			return obj, nil
		}
	}

	return data, nil
}

func fitInt(data any, to reflect.Type) (any, error) {
	n, err := toInt(data)
	if err != nil {
		return nil, err
	}

	if reflect.New(to).Elem().OverflowInt(n) {
		return nil, fmt.Errorf("%w: %d into %s", errOverflow, n, to)
	}

	return reflect.ValueOf(n).Convert(to).Interface(), nil
}

func fitUint(data any, to reflect.Type) (any, error) {
	n, err := toInt(data)
	if err != nil {
		return nil, err
	}

	if n < 0 || reflect.New(to).Elem().OverflowUint(uint64(n)) {
		return nil, fmt.Errorf("%w: %d into %s", errOverflow, n, to)
	}

	return reflect.ValueOf(uint64(n)).Convert(to).Interface(), nil
}

func fitFloat(data any, to reflect.Type) (any, error) {
	f, err := toFloat(data)
	if err != nil {
		return nil, err
	}

	if math.IsInf(f, 0) || reflect.New(to).Elem().OverflowFloat(f) {
		return nil, fmt.Errorf("%w: %g into %s", errOverflow, f, to)
	}

	return reflect.ValueOf(f).Convert(to).Interface(), nil
}

// toInt accepts integer values and numeric strings. A fractional numeric
// string is truncated toward zero.
func toInt(v any) (int64, error) {
	var s string

	switch n := v.(type) {
	case json.Number:
		s = string(n)
	case string:
		s = n
	default:
		rv := reflect.ValueOf(v)

		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rv.Int(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if rv.Uint() > math.MaxInt64 {
				return 0, fmt.Errorf("%w: %d", errOverflow, rv.Uint())
			}

			return int64(rv.Uint()), nil
		}

		return 0, fmt.Errorf("cannot use %s value as an integer", jsontype.Detect(v))
	}

	i, f, isInt, ok := jsontype.ParseNumeric(s)
	switch {
	case !ok:
		return 0, fmt.Errorf("cannot use %q as an integer", s)
	case isInt:
		return i, nil
	case math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64:
		return 0, fmt.Errorf("%w: %s", errOverflow, s)
	default:
		return int64(f), nil
	}
}

// toFloat accepts any number and numeric strings. Literals beyond the float64
// range come back infinite.
func toFloat(v any) (float64, error) {
	var s string

	switch n := v.(type) {
	case json.Number:
		s = string(n)
	case string:
		s = n
	default:
		rv := reflect.ValueOf(v)

		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			return rv.Float(), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return float64(rv.Uint()), nil
		}

		return 0, fmt.Errorf("cannot use %s value as a float", jsontype.Detect(v))
	}

	if _, f, _, ok := jsontype.ParseNumeric(s); ok {
		return f, nil
	}

	return 0, fmt.Errorf("cannot use %q as a float", s)
}

func toMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case *jsonvalue.Object:
		return m.ToMap(), true
	case map[string]any:
		return m, true
	case jsonvalue.Map:
		return map[string]any(m), true
	case rules.Object:
		out := make(map[string]any)
		for _, f := range m.Fields() {
			out[f], _ = m.Lookup(f)
		}

		return out, true
	default:
		return nil, false
	}
}

// toObject keeps the field order of ordered inputs; plain maps are sorted.
func toObject(v any) (*jsonvalue.Object, bool) {
	switch m := v.(type) {
	case *jsonvalue.Object:
		return m, true
	case map[string]any:
		return jsonvalue.FromMap(m), true
	case rules.Object:
		out := jsonvalue.NewObject()
		for _, f := range m.Fields() {
			val, _ := m.Lookup(f)
			out.Set(f, val)
		}

		return out, true
	default:
		return nil, false
	}
}
