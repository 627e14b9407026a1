package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"json-importer/internal/jsonvalue"
)

var (
	// ErrNotStruct is returned when the import target is not a struct type.
	ErrNotStruct = errors.New("import target is not a struct")
	// ErrUnsupportedField is returned for a struct field whose Go type cannot
	// hold a decoded JSON value.
	ErrUnsupportedField = errors.New("unsupported field type")
)

var (
	objectPtrType = reflect.TypeFor[*jsonvalue.Object]()
	anyType       = reflect.TypeFor[any]()
)

// binding ties a Field descriptor to the struct field it is copied into.
type binding struct {
	Field
	index int
}

// Describe returns the field descriptors of a struct type: its exported
// fields in declaration order, named after their json tag. Unexported fields
// and fields tagged `json:"-"` are skipped.
func Describe(t reflect.Type) ([]Field, error) {
	bindings, err := describe(t)
	if err != nil {
		return nil, err
	}

	fields := make([]Field, len(bindings))
	for i := range bindings {
		fields[i] = bindings[i].Field
	}

	return fields, nil
}

func describe(t reflect.Type) ([]binding, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, t)
	}

	var out []binding

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		name, skip := jsonName(sf)
		if skip {
			continue
		}

		typeName, nullable, err := declaredType(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name(), sf.Name, err)
		}

		out = append(out, binding{
			Field: Field{Name: name, Type: typeName, Nullable: nullable},
			index: i,
		})
	}

	return out, nil
}

// jsonName returns the name from the json tag, or the Go field name. Only the
// exact tag "-" skips a field; "-," names it "-".
func jsonName(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", true
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name, false
	}

	return name, false
}

// declaredType maps a Go field type to a declared type name. Pointers make
// the field nullable; an empty interface leaves it undeclared.
func declaredType(t reflect.Type) (string, bool, error) {
	switch {
	case t == objectPtrType:
		return "object", true, nil
	case t.Kind() == reflect.Interface && t.NumMethod() == 0:
		return "", true, nil
	case t.Kind() == reflect.Pointer:
		name, _, err := scalarType(t.Elem())
		if err != nil {
			return "", false, err
		}

		return name, true, nil
	}

	return scalarType(t)
}

func scalarType(t reflect.Type) (string, bool, error) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return goIntType, false, nil
	case reflect.Float32, reflect.Float64:
		return "float", false, nil
	case reflect.String:
		return "string", false, nil
	case reflect.Bool:
		return "bool", false, nil
	case reflect.Slice:
		if t.Elem() == anyType {
			return "array", false, nil
		}
	case reflect.Map:
		if t.Key().Kind() == reflect.String && t.Elem() == anyType {
			return "object", false, nil
		}
	}

	return "", false, fmt.Errorf("%w: %s", ErrUnsupportedField, t)
}
