package rules

import (
	"fmt"
	"slices"
	"strings"

	"json-importer/internal/match"
	"json-importer/internal/validation"
)

// NoOtherFields reports every field of the object that is not in the
// accepted set, in the object's field order.
type NoOtherFields struct {
	accepted []string
	set      map[string]struct{}
}

// NewNoOtherFields builds the rule from the accepted field names.
func NewNoOtherFields(accepted ...string) NoOtherFields {
	set := make(map[string]struct{}, len(accepted))
	for _, f := range accepted {
		set[f] = struct{}{}
	}

	return NoOtherFields{accepted: slices.Clone(accepted), set: set}
}

// Accepted returns the accepted field names in the order given.
func (r NoOtherFields) Accepted() []string {
	return slices.Clone(r.accepted)
}

// Verify implements Rule. Each error carries the accepted names closest to
// the unexpected one as suggestions.
func (r NoOtherFields) Verify(obj Object, errs *validation.Errors) {
	for _, field := range obj.Fields() {
		if _, ok := r.set[field]; ok {
			continue
		}

		errs.Add(validation.NewUnexpectedField(field, match.Suggest(field, r.accepted)...))
	}
}

func (r NoOtherFields) String() string {
	return fmt.Sprintf("no fields other than [%s]", strings.Join(r.accepted, ", "))
}
