package main

import (
	"fmt"

	"json-importer/internal/descriptor"
)

// loadDescriptor loads a descriptor file, logs its warnings and fails on any
// error diagnostic.
func loadDescriptor(path string) (*descriptor.File, error) {
	f, err := descriptor.LoadFile(path)
	if err != nil {
		return nil, err
	}

	diags := descriptor.Validate(f)
	for _, w := range diags.Warnings {
		log.Warn().Str("descriptor", path).Msg(w.String())
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid descriptor %s: %w", path, diags.Error())
	}

	log.Debug().
		Str("descriptor", path).
		Int("structures", len(f.Structures)).
		Msg("descriptor loaded")

	return f, nil
}
