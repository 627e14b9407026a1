package rules

import (
	"json-importer/internal/validation"
)

// Object is the view of a decoded JSON object that rules need.
//
// Lookup reports key presence separately from the value, so a field that is
// explicitly null yields (nil, true) while an absent one yields (nil, false).
// Fields returns the field names in the object's iteration order.
type Object interface {
	Lookup(field string) (any, bool)
	Fields() []string
}

// Rule is a single validation check.
type Rule interface {
	Verify(obj Object, errs *validation.Errors)
}

// Func adapts an ordinary function to the Rule interface.
type Func func(obj Object, errs *validation.Errors)

// Verify calls f(obj, errs).
func (f Func) Verify(obj Object, errs *validation.Errors) {
	f(obj, errs)
}
