package jsonvalue

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PreservesOrder(t *testing.T) {
	obj, err := Decode([]byte(`{"z": 1, "a": {"y": null, "b": [1, 2.5, "s"]}, "m": true}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "a", "m"}, obj.Fields())
	assert.Equal(t, 3, obj.Len())

	z, ok := obj.Lookup("z")
	require.True(t, ok)
	assert.Equal(t, json.Number("1"), z)

	a, _ := obj.Lookup("a")
	inner, ok := a.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"y", "b"}, inner.Fields())

	y, ok := inner.Lookup("y")
	assert.True(t, ok, "null fields are present")
	assert.Nil(t, y)

	b, _ := inner.Lookup("b")
	assert.Equal(t, []any{json.Number("1"), json.Number("2.5"), "s"}, b)

	_, ok = obj.Lookup("missing")
	assert.False(t, ok)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"array", `[1, 2]`},
		{"scalar", `"str"`},
		{"malformed", `{"a": }`},
		{"trailing", `{"a": 1} {"b": 2}`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeReader(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}

	_, err := Decode([]byte(`[1]`))
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestObject_DuplicateKeys(t *testing.T) {
	obj, err := Decode([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, obj.Fields())

	v, _ := obj.Lookup("a")
	assert.Equal(t, json.Number("3"), v)
}

func TestObject_MarshalAndToMap(t *testing.T) {
	obj := NewObject().Set("b", 1).Set("a", NewObject().Set("x", []any{NewObject().Set("k", "v")}))

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":{"x":[{"k":"v"}]}}`, string(data))

	assert.Equal(t, map[string]any{
		"b": 1,
		"a": map[string]any{"x": []any{map[string]any{"k": "v"}}},
	}, obj.ToMap())

	var nilObj *Object
	assert.Nil(t, nilObj.Fields())
	assert.Equal(t, 0, nilObj.Len())
	_, ok := nilObj.Lookup("a")
	assert.False(t, ok)

	var zero Object
	zero.Set("k", true)
	assert.Equal(t, []string{"k"}, zero.Fields())
}

func TestMap(t *testing.T) {
	m := Map{"b": 1, "a": nil}

	assert.Equal(t, []string{"a", "b"}, m.Fields())

	v, ok := m.Lookup("a")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestFromMap(t *testing.T) {
	o := FromMap(map[string]any{"b": 1, "a": map[string]any{"c": nil}})

	assert.Equal(t, []string{"a", "b"}, o.Fields())

	v, ok := o.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"c": nil}, v)
}
