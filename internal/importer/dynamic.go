package importer

import (
	"errors"
	"slices"

	"json-importer/internal/jsonvalue"
	"json-importer/internal/rules"
	"json-importer/internal/validation"
)

var errMissing = errors.New("field not present")

// Dynamic imports JSON objects described by an explicit field list rather
// than a Go type. The result is a *jsonvalue.Object holding exactly the
// declared fields, in declaration order.
type Dynamic struct {
	*RuleBased

	name   string
	fields []Field
}

var _ Importer[*jsonvalue.Object] = (*Dynamic)(nil)

// NewDynamic builds an importer for the structure called name.
func NewDynamic(name string, fields []Field) *Dynamic {
	return &Dynamic{
		RuleBased: NewRuleBased(BuildRules(fields)...),
		name:      name,
		fields:    slices.Clone(fields),
	}
}

// Name returns the structure name.
func (d *Dynamic) Name() string {
	return d.name
}

// Fields returns the descriptors the rules were built from.
func (d *Dynamic) Fields() []Field {
	return slices.Clone(d.fields)
}

// OnlyAllowExactFields adds a rule rejecting any JSON field that is not a
// declared, non-static field.
func (d *Dynamic) OnlyAllowExactFields() {
	d.AddRule(rules.NewNoOtherFields(fieldNames(d.fields)...))
}

// Import copies the declared fields of obj into a new object. It panics with
// a *ContractError if obj does not validate.
func (d *Dynamic) Import(obj rules.Object) *jsonvalue.Object {
	d.mustValidate(d.name, obj)
	return d.populate(obj)
}

// ValidateAndImport validates obj and, when there are no errors, imports it.
func (d *Dynamic) ValidateAndImport(obj rules.Object) (*jsonvalue.Object, *validation.Errors) {
	if errs := d.Validate(obj); errs.HasErrors() {
		return nil, errs
	}

	return d.populate(obj), validation.NewErrors()
}

func (d *Dynamic) populate(obj rules.Object) *jsonvalue.Object {
	out := jsonvalue.NewObject()

	for _, f := range d.fields {
		if f.Static {
			continue
		}

		value, ok := obj.Lookup(f.Name)
		if !ok {
			panic(&ContractError{Target: d.name, Field: f.Name, Err: errMissing})
		}

		if _, nullable := ExpectedType(f); value == nil && !nullable {
			panic(&ContractError{Target: d.name, Field: f.Name, Err: errNull})
		}

		out.Set(f.Name, value)
	}

	return out
}
