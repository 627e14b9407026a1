package validation

import (
	"json-importer/jsontype"
)

const (
	problemMissing    = "Field not present in object"
	problemUnexpected = "Unexpected field in object"
)

// Error describes one validation failure on one field.
type Error struct {
	// Field is the name of the offending JSON field.
	Field string `json:"field"`
	// Problem is the human-readable description.
	Problem string `json:"problem"`
	// Kind classifies the failure.
	Kind Kind `json:"kind"`
	// Expected and Found are only set for FieldTypeMismatch.
	Expected jsontype.Type `json:"expectedType,omitempty"`
	Found    jsontype.Type `json:"foundType,omitempty"`
	// Suggestions lists close matches for an UnexpectedField, best first.
	Suggestions []string `json:"suggestions,omitempty"`
}

// NewFieldMissing reports a required field that is absent or null.
func NewFieldMissing(field string) Error {
	return Error{Field: field, Problem: problemMissing, Kind: FieldMissing}
}

// NewFieldTypeMismatch reports a field whose value kind disagrees with the
// declared one.
func NewFieldTypeMismatch(field string, expected, found jsontype.Type) Error {
	return Error{
		Field:    field,
		Problem:  "Expected type " + string(expected) + ", found " + string(found),
		Kind:     FieldTypeMismatch,
		Expected: expected,
		Found:    found,
	}
}

// NewFieldOutOfRange reports a value of the declared kind that the target
// cannot represent, such as 300 for an int8.
func NewFieldOutOfRange(field, target string) Error {
	return Error{Field: field, Problem: "Value out of range for " + target, Kind: FieldOutOfRange}
}

// NewUnexpectedField reports a field outside the accepted set.
func NewUnexpectedField(field string, suggestions ...string) Error {
	if len(suggestions) == 0 {
		suggestions = nil
	}

	return Error{Field: field, Problem: problemUnexpected, Kind: UnexpectedField, Suggestions: suggestions}
}

// Error implements the error interface.
func (e Error) Error() string {
	msg := e.Field + ": " + e.Problem
	if len(e.Suggestions) > 0 {
		msg += " (did you mean '" + e.Suggestions[0] + "'?)"
	}

	return msg
}
