package validation

import (
	"encoding/json"
	"iter"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Errors is an ordered, append-only collection of validation failures.
// Insertion order is the order in which rules reported them.
//
// The zero value is an empty collection ready to use. Ranging over All while
// another goroutine calls Add is not supported.
type Errors struct {
	buf []Error
}

// NewErrors returns an empty collection.
func NewErrors() *Errors {
	return &Errors{}
}

// Add appends one or more errors, preserving their order.
func (e *Errors) Add(errs ...Error) {
	e.buf = append(e.buf, errs...)
}

// HasErrors reports whether the collection is non-empty.
//
//	e.HasErrors() == (e.Len() > 0)
func (e *Errors) HasErrors() bool {
	return e.Len() > 0
}

// Len returns the number of recorded errors.
func (e *Errors) Len() int {
	if e == nil {
		return 0
	}

	return len(e.buf)
}

// At returns the i-th error. It panics if i is out of range.
func (e *Errors) At(i int) Error {
	return e.buf[i]
}

// All iterates the errors in insertion order. The sequence reflects the
// contents at the time iteration starts and may be ranged over repeatedly.
func (e *Errors) All() iter.Seq2[int, Error] {
	snapshot := e.Slice()

	return func(yield func(int, Error) bool) {
		for i, v := range snapshot {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Slice returns a copy of the errors in insertion order.
func (e *Errors) Slice() []Error {
	if e == nil {
		return nil
	}

	return slices.Clone(e.buf)
}

// Has reports whether any error concerns field.
func (e *Errors) Has(field string) bool {
	if e == nil {
		return false
	}

	return slices.ContainsFunc(e.buf, func(v Error) bool { return v.Field == field })
}

// String joins every error as "field: problem".
func (e *Errors) String() string {
	if e == nil {
		return ""
	}

	parts := make([]string, 0, len(e.buf))
	for _, v := range e.buf {
		parts = append(parts, v.Error())
	}

	return strings.Join(parts, "; ")
}

// Err returns every error aggregated into a single error, or nil when the
// collection is empty. Individual errors can be recovered with errors.As.
func (e *Errors) Err() error {
	if !e.HasErrors() {
		return nil
	}

	var result *multierror.Error
	for _, v := range e.buf {
		result = multierror.Append(result, v)
	}

	result.ErrorFormat = formatList

	return result.ErrorOrNil()
}

func formatList(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// MarshalJSON encodes the collection as an array, empty rather than null.
func (e *Errors) MarshalJSON() ([]byte, error) {
	if e == nil || e.buf == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(e.buf)
}
