package jsonvalue

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// Object is a JSON object that remembers the order of its fields.
// The zero value is an empty object ready to use.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: map[string]any{}}
}

// Set stores value under field. A field set twice keeps its first position
// and its last value, as encoding/json does for duplicate keys.
func (o *Object) Set(field string, value any) *Object {
	if o.values == nil {
		o.values = map[string]any{}
	}

	if _, ok := o.values[field]; !ok {
		o.keys = append(o.keys, field)
	}

	o.values[field] = value

	return o
}

// Lookup returns the value stored under field. The boolean reports key
// presence, so a JSON null yields (nil, true).
func (o *Object) Lookup(field string) (any, bool) {
	if o == nil {
		return nil, false
	}

	v, ok := o.values[field]

	return v, ok
}

// Fields returns the field names in insertion order.
func (o *Object) Fields() []string {
	if o == nil {
		return nil
	}

	return slices.Clone(o.keys)
}

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// ToMap converts the object and every nested object into plain maps.
func (o *Object) ToMap() map[string]any {
	out := make(map[string]any, o.Len())
	if o == nil {
		return out
	}

	for _, k := range o.keys {
		out[k] = plain(o.values[k])
	}

	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case *Object:
		return t.ToMap()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = plain(t[i])
		}

		return out
	default:
		return v
	}
}

// MarshalJSON writes the fields in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Map adapts a plain decoded map to the object interface. Its fields are
// iterated in sorted order.
type Map map[string]any

// Lookup returns the value stored under field and whether the key exists.
func (m Map) Lookup(field string) (any, bool) {
	v, ok := m[field]
	return v, ok
}

// Fields returns the sorted field names.
func (m Map) Fields() []string {
	return slices.Sorted(maps.Keys(m))
}

// FromMap returns an object holding the entries of m in sorted key order.
// Nested values are stored as they are.
func FromMap(m map[string]any) *Object {
	o := NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		o.Set(k, m[k])
	}

	return o
}
