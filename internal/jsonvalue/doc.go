// Package jsonvalue provides the generic decoded-JSON representation consumed
// by the validation rules and importers.
//
// Two object representations are supported:
//   - Object: keeps fields in the order they appeared in the source text.
//     Produced by Decode and DecodeReader.
//   - Map: a plain map[string]any whose fields are iterated in sorted order,
//     for callers that already hold the output of encoding/json.
//
// Numbers are kept as json.Number so that integer and float literals remain
// distinguishable.
package jsonvalue
