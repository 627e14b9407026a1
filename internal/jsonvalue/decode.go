package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject is returned when the decoded document is not a JSON object.
var ErrNotObject = errors.New("json document is not an object")

// Decode parses a JSON document whose top level value is an object.
func Decode(data []byte) (*Object, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader parses a single JSON object from r.
func DecodeReader(r io.Reader) (*Object, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}

	obj, ok := v.(*Object)
	if !ok {
		return nil, ErrNotObject
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("failed to decode json: trailing data after object")
	}

	return obj, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := NewObject()

		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}

			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}

			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}

			obj.Set(key, val)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return obj, nil
	case '[':
		arr := []any{}

		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}

			arr = append(arr, val)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}
