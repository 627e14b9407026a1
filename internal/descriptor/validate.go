package descriptor

import (
	"fmt"
	"slices"

	"json-importer/internal/diagnostic"
	"json-importer/internal/match"
)

// knownTypes are the declared type names that can match a JSON value.
var knownTypes = []string{"int", "integer", "float", "string", "bool", "array", "object"}

// Validate checks a descriptor for problems that would make its importers
// misbehave: duplicates, empty names, and type names no value can match.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("descriptor_is_nil", "descriptor is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported descriptor version %q", f.Version), "", "")
	}

	seenStructures := map[string]struct{}{}

	for i := range f.Structures {
		s := &f.Structures[i]

		if s.Name == "" {
			res.AddError("empty_structure_name", fmt.Sprintf("structure #%d has no name", i+1), "", "")
		} else if _, ok := seenStructures[s.Name]; ok {
			res.AddError("duplicate_structure", fmt.Sprintf("duplicate structure %q", s.Name), s.Name, "")
		}

		seenStructures[s.Name] = struct{}{}

		validateFields(res, s)
	}

	return res
}

func validateFields(res *diagnostic.Diagnostics, s *Structure) {
	if len(s.Fields) == 0 {
		res.AddWarning("no_fields", "structure declares no fields", s.Name, "")
	}

	seen := map[string]struct{}{}

	for i, fld := range s.Fields {
		if fld.Name == "" {
			res.AddError("empty_field_name", fmt.Sprintf("field #%d has no name", i+1), s.Name, "")
			continue
		}

		if _, ok := seen[fld.Name]; ok {
			res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", fld.Name), s.Name, fld.Name)
		}

		seen[fld.Name] = struct{}{}

		if fld.Type == "" {
			if fld.Nullable {
				res.AddWarning("nullable_untyped", "nullable has no effect on a field without a type", s.Name, fld.Name)
			}

			continue
		}

		if !slices.Contains(knownTypes, fld.Type) {
			res.AddWarning("unknown_type",
				fmt.Sprintf("type %q never matches a JSON value", fld.Type),
				s.Name, fld.Name, match.Suggest(fld.Type, knownTypes)...)
		}
	}
}
