package validation

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind classifies a validation failure.
type Kind int

const (
	_ Kind = iota // skip zero value, it marks an uninitialized Error

	FieldMissing      // field_missing
	FieldTypeMismatch // field_type_mismatch
	UnexpectedField   // unexpected_field
	FieldOutOfRange   // field_out_of_range
)

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
