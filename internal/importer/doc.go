// Package importer validates decoded JSON objects against a rule list and,
// once they validate, maps them into a target.
//
// # Importers
//
//   - RuleBased: an ordered rule list and the Validate step shared by all
//     importers.
//   - Struct[T]: derives one rule per exported field of the struct T and
//     copies JSON fields into a new T.
//   - Dynamic: the same, driven by an explicit field list (for example one
//     loaded from a descriptor file) and producing a *jsonvalue.Object.
//
// # Contract
//
// Validate never panics on validation failure; failures are returned as a
// *validation.Errors. If Validate returns no errors, Import on the same
// object succeeds and returns a fully populated target. Calling Import on an
// object that does not validate is a programming error and panics with a
// *ContractError.
//
//	imp := importer.MustStruct[User]()
//	imp.OnlyAllowExactFields()
//
//	if errs := imp.Validate(obj); errs.HasErrors() {
//	    return errs
//	}
//
//	user := imp.Import(obj)
//
// # Rule generation
//
// BuildRules turns field descriptors into rules without any reflection:
// a field with no declared type accepts any value and may be null; a typed
// field is checked for that type and may be null only when marked nullable.
// The Go type name "int" maps to the JSON integer kind; every other type
// name is used as the expected JSON kind verbatim.
package importer
