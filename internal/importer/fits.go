package importer

import (
	"fmt"
	"reflect"

	"json-importer/internal/rules"
	"json-importer/internal/validation"
)

// fitsField reports a value of the declared kind that the Go field still
// cannot hold, such as 300 for an int8. It follows the field's existence rule
// and stays silent once that rule has reported the field.
type fitsField struct {
	field string
	typ   reflect.Type
}

var _ rules.Rule = fitsField{}

func (r fitsField) Verify(obj rules.Object, errs *validation.Errors) {
	value, ok := obj.Lookup(r.field)
	if !ok || value == nil || errs.Has(r.field) {
		return
	}

	if err := decodeField(reflect.New(r.typ).Elem(), value); err != nil {
		errs.Add(validation.NewFieldOutOfRange(r.field, r.typ.String()))
	}
}

func (r fitsField) String() string {
	return fmt.Sprintf("field %q fits %s", r.field, r.typ)
}

// structRules returns, per bound field, its existence rule followed by its
// range rule.
func structRules(t reflect.Type, bindings []binding) []rules.Rule {
	out := make([]rules.Rule, 0, 2*len(bindings))

	for _, b := range bindings {
		out = append(out, BuildRules([]Field{b.Field})...)
		out = append(out, fitsField{field: b.Name, typ: t.Field(b.index).Type})
	}

	return out
}
