package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"json-importer/internal/jsonvalue"
	"json-importer/internal/validation"
	"json-importer/jsontype"
)

const existsData = `{
	"id": 1,
	"name": "Benedict",
	"active": true,
	"age": "28",
	"purpose": null,
	"flot": "38.4",
	"ratio": 0.5,
	"tags": ["a", "b"],
	"meta": {"k": "v"}
}`

func decodeTestObject(t *testing.T, data string) *jsonvalue.Object {
	t.Helper()

	obj, err := jsonvalue.Decode([]byte(data))
	require.NoError(t, err)

	return obj
}

func TestFieldExists_Existence(t *testing.T) {
	obj := decodeTestObject(t, existsData)

	tests := []struct {
		name  string
		field string
		ok    bool
	}{
		{"id (exists)", "id", true},
		{"foo (non-existent)", "foo", false},
		{"ID (non-existent: wrong case)", "ID", false},
		{"purpose (null)", "purpose", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.NewErrors()
			NewFieldExists(tt.field).Verify(obj, errs)

			if tt.ok {
				assert.False(t, errs.HasErrors(), errs.String())
				return
			}

			require.Equal(t, 1, errs.Len())
			assert.Equal(t, validation.NewFieldMissing(tt.field), errs.At(0))
		})
	}
}

func TestFieldExistsOrNull_Existence(t *testing.T) {
	obj := decodeTestObject(t, existsData)

	tests := []struct {
		name  string
		field string
		ok    bool
	}{
		{"id (exists)", "id", true},
		{"foo (non-existent)", "foo", false},
		{"ID (non-existent: wrong case)", "ID", false},
		{"purpose (exists but null)", "purpose", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.NewErrors()
			NewFieldExistsOrNull(tt.field).Verify(obj, errs)

			if tt.ok {
				assert.False(t, errs.HasErrors(), errs.String())
				return
			}

			require.Equal(t, 1, errs.Len())
			assert.Equal(t, validation.FieldMissing, errs.At(0).Kind)
			assert.Equal(t, tt.field, errs.At(0).Field)
		})
	}
}

type typeCase struct {
	name  string
	field string
	typ   jsontype.Type
	ok    bool
}

var sharedTypeCases = []typeCase{
	{"id is any", "id", jsontype.Any, true},
	{"id is int", "id", jsontype.Integer, true},
	{"id is not float", "id", jsontype.Float, false},
	{"id is not string", "id", jsontype.String, false},
	{"id is not bool", "id", jsontype.Bool, false},
	{"id is not array", "id", jsontype.Array, false},
	{"id is not object", "id", jsontype.Object, false},

	{"flot is any", "flot", jsontype.Any, true},
	{"flot is int", "flot", jsontype.Integer, true},
	{"flot is float", "flot", jsontype.Float, true},
	{"flot is string", "flot", jsontype.String, true},
	{"flot is not bool", "flot", jsontype.Bool, false},
	{"flot is not array", "flot", jsontype.Array, false},
	{"flot is not object", "flot", jsontype.Object, false},

	{"name is not int", "name", jsontype.Integer, false},
	{"name is not float", "name", jsontype.Float, false},
	{"active is bool", "active", jsontype.Bool, true},
	{"ratio is float", "ratio", jsontype.Float, true},
	{"ratio is not int", "ratio", jsontype.Integer, false},
	{"tags is array", "tags", jsontype.Array, true},
	{"meta is object", "meta", jsontype.Object, true},
	{"meta is not array", "meta", jsontype.Array, false},
	{"unknown declared type never matches", "name", jsontype.Type("time.Time"), false},
}

func checkTypeCase(t *testing.T, rule Rule, obj Object, tt typeCase) {
	t.Helper()

	errs := validation.NewErrors()
	rule.Verify(obj, errs)

	if tt.ok {
		assert.False(t, errs.HasErrors(), errs.String())
		return
	}

	require.Equal(t, 1, errs.Len(), errs.String())

	got := errs.At(0)
	assert.Equal(t, validation.FieldTypeMismatch, got.Kind)
	assert.Equal(t, tt.field, got.Field)
	assert.Equal(t, tt.typ, got.Expected)
	assert.Equal(t, jsontype.Detect(mustLookup(t, obj, tt.field)), got.Found)
}

func mustLookup(t *testing.T, obj Object, field string) any {
	t.Helper()

	v, ok := obj.Lookup(field)
	require.True(t, ok)

	return v
}

func TestFieldExists_Type(t *testing.T) {
	obj := decodeTestObject(t, existsData)

	for _, tt := range sharedTypeCases {
		t.Run(tt.name, func(t *testing.T) {
			checkTypeCase(t, NewFieldExists(tt.field, tt.typ), obj, tt)
		})
	}
}

func TestFieldExistsOrNull_Type(t *testing.T) {
	obj := decodeTestObject(t, existsData)

	cases := append([]typeCase{
		{"purpose is int", "purpose", jsontype.Integer, true},
		{"purpose is float", "purpose", jsontype.Float, true},
		{"purpose is string", "purpose", jsontype.String, true},
		{"purpose is bool", "purpose", jsontype.Bool, true},
		{"purpose is array", "purpose", jsontype.Array, true},
		{"purpose is object", "purpose", jsontype.Object, true},
	}, sharedTypeCases...)

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			checkTypeCase(t, NewFieldExistsOrNull(tt.field, tt.typ), obj, tt)
		})
	}
}

func TestFieldExists_MissingNeverReportsType(t *testing.T) {
	errs := validation.NewErrors()
	NewFieldExists("purpose", jsontype.String).Verify(decodeTestObject(t, existsData), errs)

	require.Equal(t, 1, errs.Len())
	assert.Equal(t, validation.FieldMissing, errs.At(0).Kind)
}

func TestFieldExists_NumericStrings(t *testing.T) {
	tests := []struct {
		value string
		typ   jsontype.Type
		ok    bool
	}{
		{"42", jsontype.Integer, true},
		{"3.14", jsontype.Float, true},
		{"3.14", jsontype.Integer, true},
		{"-1e5", jsontype.Float, true},
		{" 7 ", jsontype.Integer, true},
		{"abc", jsontype.Integer, false},
		{"abc", jsontype.Float, false},
		{"0x1A", jsontype.Integer, false},
		{"", jsontype.Integer, false},
		{"42", jsontype.Bool, false},
	}

	for _, tt := range tests {
		t.Run(tt.value+"_"+tt.typ.String(), func(t *testing.T) {
			obj := jsonvalue.NewObject().Set("v", tt.value)

			errs := validation.NewErrors()
			NewFieldExists("v", tt.typ).Verify(obj, errs)

			assert.Equal(t, !tt.ok, errs.HasErrors(), errs.String())
		})
	}
}

func TestFieldExists_PlainMap(t *testing.T) {
	obj := jsonvalue.Map{"id": float64(3), "count": 2, "nothing": nil}

	errs := validation.NewErrors()
	NewFieldExists("id", jsontype.Float).Verify(obj, errs)
	NewFieldExists("count", jsontype.Integer).Verify(obj, errs)
	NewFieldExists("nothing").Verify(obj, errs)
	NewFieldExistsOrNull("nothing", jsontype.String).Verify(obj, errs)

	require.Equal(t, 1, errs.Len(), errs.String())
	assert.Equal(t, validation.NewFieldMissing("nothing"), errs.At(0))
}
