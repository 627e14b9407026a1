package importer

import (
	"reflect"

	"json-importer/internal/rules"
	"json-importer/internal/validation"
)

// Struct imports JSON objects into values of the struct type T.
//
// The field list is read once, at construction. Each exported field becomes
// a FieldExists rule, or a FieldExistsOrNull rule when its type is a pointer
// or an empty interface, followed by a rule rejecting values the field's Go
// type cannot hold.
type Struct[T any] struct {
	*RuleBased

	target   string
	bindings []binding
}

var _ Importer[struct{}] = (*Struct[struct{}])(nil)

// NewStruct builds an importer for T. It fails with ErrNotStruct when T is
// not a struct and with ErrUnsupportedField when one of its exported fields
// cannot hold a decoded JSON value.
func NewStruct[T any]() (*Struct[T], error) {
	typ := reflect.TypeFor[T]()

	bindings, err := describe(typ)
	if err != nil {
		return nil, err
	}

	return &Struct[T]{
		RuleBased: NewRuleBased(structRules(typ, bindings)...),
		target:    typ.String(),
		bindings:  bindings,
	}, nil
}

// MustStruct is like NewStruct but panics on error. It is meant for
// package-level importers of known types.
func MustStruct[T any]() *Struct[T] {
	s, err := NewStruct[T]()
	if err != nil {
		panic(err)
	}

	return s
}

// Fields returns the descriptors the rules were built from.
func (s *Struct[T]) Fields() []Field {
	out := make([]Field, len(s.bindings))
	for i := range s.bindings {
		out[i] = s.bindings[i].Field
	}

	return out
}

// OnlyAllowExactFields adds a rule rejecting any JSON field that is not one
// of T's fields. Without it, unknown fields are ignored by Import.
func (s *Struct[T]) OnlyAllowExactFields() {
	s.AddRule(rules.NewNoOtherFields(fieldNames(s.Fields())...))
}

// Import returns a new T populated from obj. It panics with a
// *ContractError if obj does not validate.
func (s *Struct[T]) Import(obj rules.Object) T {
	s.mustValidate(s.target, obj)
	return s.populate(obj)
}

// ValidateAndImport validates obj and, when there are no errors, imports it.
// On failure it returns the zero T and the errors.
func (s *Struct[T]) ValidateAndImport(obj rules.Object) (T, *validation.Errors) {
	if errs := s.Validate(obj); errs.HasErrors() {
		var zero T
		return zero, errs
	}

	return s.populate(obj), validation.NewErrors()
}

func (s *Struct[T]) populate(obj rules.Object) T {
	var out T

	dst := reflect.ValueOf(&out).Elem()

	for _, b := range s.bindings {
		value, ok := obj.Lookup(b.Name)
		if !ok {
			panic(&ContractError{Target: s.target, Field: b.Name, Err: errMissing})
		}

		if err := decodeField(dst.Field(b.index), value); err != nil {
			panic(&ContractError{Target: s.target, Field: b.Name, Err: err})
		}
	}

	return out
}
