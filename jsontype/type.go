// Package jsontype names the logical kinds of decoded JSON values and detects
// the kind of a value produced by a JSON decoder.
package jsontype

import (
	"encoding/json"
	"reflect"
)

// Type is the logical kind of a JSON value.
//
// Types are compared by name, so a declared type that is not one of the
// constants below simply never matches a detected kind.
type Type string

const (
	Any     Type = "" // accepts every kind
	String  Type = "string"
	Integer Type = "integer"
	Float   Type = "float"
	Bool    Type = "bool"
	Array   Type = "array"
	Object  Type = "object"

	// Null and Unknown are only ever reported, never declared.
	Null    Type = "null"
	Unknown Type = "unknown"
)

// String returns the type name, "any" for Any.
func (t Type) String() string {
	if t == Any {
		return "any"
	}

	return string(t)
}

// IsNumber reports whether t is Integer or Float.
func (t Type) IsNumber() bool {
	return t == Integer || t == Float
}

// objectLike is satisfied by the decoded object representations, which live
// outside this package.
type objectLike interface {
	Lookup(field string) (any, bool)
	Fields() []string
}

// Detect returns the kind of a decoded JSON value.
//
// json.Number values are Integer when their text fits an int64 and Float
// otherwise, matching what a decoder that keeps number literals would report.
func Detect(value any) Type {
	switch v := value.(type) {
	case nil:
		return Null
	case string:
		return String
	case bool:
		return Bool
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return Integer
		}

		return Float
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return Integer
	case float32, float64:
		return Float
	case []any:
		return Array
	case map[string]any, objectLike:
		return Object
	}

	switch reflect.TypeOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Map:
		return Object
	default:
		return Unknown
	}
}
