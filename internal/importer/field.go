package importer

import (
	"json-importer/internal/rules"
	"json-importer/jsontype"
)

// goIntType is the one declared type name translated to a JSON kind.
const goIntType = "int"

// Field describes one declared field of a target structure.
type Field struct {
	// Name is the JSON field name.
	Name string `yaml:"name" json:"name"`
	// Type is the declared type name; empty means undeclared.
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
	// Nullable allows an explicit JSON null. Ignored when Type is empty,
	// since undeclared fields are always nullable.
	Nullable bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	// Static fields belong to the structure rather than its instances and
	// are neither validated nor imported.
	Static bool `yaml:"static,omitempty" json:"static,omitempty"`
}

// ExpectedType returns the JSON kind a field must hold and whether it may be
// null.
func ExpectedType(f Field) (jsontype.Type, bool) {
	switch f.Type {
	case "":
		return jsontype.Any, true
	case goIntType:
		return jsontype.Integer, f.Nullable
	default:
		return jsontype.Type(f.Type), f.Nullable
	}
}

// BuildRules returns one existence rule per non-static field, in order.
func BuildRules(fields []Field) []rules.Rule {
	out := make([]rules.Rule, 0, len(fields))

	for _, f := range fields {
		if f.Static {
			continue
		}

		typ, nullable := ExpectedType(f)
		if nullable {
			out = append(out, rules.NewFieldExistsOrNull(f.Name, typ))
		} else {
			out = append(out, rules.NewFieldExists(f.Name, typ))
		}
	}

	return out
}

// fieldNames returns the names of the non-static fields.
func fieldNames(fields []Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if !f.Static {
			names = append(names, f.Name)
		}
	}

	return names
}
