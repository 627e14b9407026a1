package rules

import (
	"fmt"

	"json-importer/internal/validation"
	"json-importer/jsontype"
)

// FieldExists requires a field to be present and not null and, unless Type
// is jsontype.Any, to hold a value of that type. A string holding a number
// satisfies an Integer or Float expectation.
type FieldExists struct {
	Field string
	Type  jsontype.Type
}

// NewFieldExists builds a FieldExists rule. Type defaults to jsontype.Any.
func NewFieldExists(field string, typ ...jsontype.Type) FieldExists {
	return FieldExists{Field: field, Type: optionalType(typ)}
}

// Verify implements Rule.
func (r FieldExists) Verify(obj Object, errs *validation.Errors) {
	verifyField(obj, r.Field, r.Type, errs)
}

func (r FieldExists) String() string {
	return fmt.Sprintf("field %q exists (%s)", r.Field, r.Type)
}

// FieldExistsOrNull is FieldExists, except that a field explicitly set to
// null passes regardless of Type. An absent field still fails.
type FieldExistsOrNull struct {
	Field string
	Type  jsontype.Type
}

// NewFieldExistsOrNull builds a FieldExistsOrNull rule. Type defaults to
// jsontype.Any.
func NewFieldExistsOrNull(field string, typ ...jsontype.Type) FieldExistsOrNull {
	return FieldExistsOrNull{Field: field, Type: optionalType(typ)}
}

// Verify implements Rule.
func (r FieldExistsOrNull) Verify(obj Object, errs *validation.Errors) {
	if v, ok := obj.Lookup(r.Field); ok && v == nil {
		return
	}

	verifyField(obj, r.Field, r.Type, errs)
}

func (r FieldExistsOrNull) String() string {
	return fmt.Sprintf("field %q exists or is null (%s)", r.Field, r.Type)
}

// verifyField is the existence and type check shared by both rules.
func verifyField(obj Object, field string, expected jsontype.Type, errs *validation.Errors) {
	value, ok := obj.Lookup(field)
	if !ok || value == nil {
		errs.Add(validation.NewFieldMissing(field))
		return
	}

	if expected == jsontype.Any {
		return
	}

	detected := jsontype.Detect(value)
	if detected == expected {
		return
	}

	if s, isString := value.(string); isString && expected.IsNumber() && jsontype.IsNumeric(s) {
		return
	}

	errs.Add(validation.NewFieldTypeMismatch(field, expected, detected))
}

func optionalType(typ []jsontype.Type) jsontype.Type {
	if len(typ) == 0 {
		return jsontype.Any
	}

	return typ[0]
}
