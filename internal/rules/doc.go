// Package rules defines the Rule contract and the built-in rules run by an
// importer against a decoded JSON object.
//
// A rule inspects the object and appends zero or more errors to the
// collection it is given. Rules never panic on well-formed decoded JSON and
// never modify the object; they are immutable once built, so one rule can
// be shared between importers and goroutines.
//
// Built-in rules:
//   - FieldExists: the field is present, not null, and of the declared type
//   - FieldExistsOrNull: as FieldExists, but a field explicitly set to null passes
//   - NoOtherFields: the object has no field outside an accepted set
//
// Caller-defined rules implement Rule directly or wrap a function with Func.
package rules
