package descriptor

import (
	"json-importer/internal/importer"
)

// CurrentVersion is the descriptor format version written by Marshal.
const CurrentVersion = "1"

// File is the root of a descriptor file.
type File struct {
	Version    string      `yaml:"version"`
	Structures []Structure `yaml:"structures"`
}

// Structure describes one target structure.
type Structure struct {
	Name   string           `yaml:"name"`
	Exact  bool             `yaml:"exact,omitempty"`
	Fields []importer.Field `yaml:"fields"`
}

// Lookup returns the structure called name.
func (f *File) Lookup(name string) (*Structure, bool) {
	for i := range f.Structures {
		if f.Structures[i].Name == name {
			return &f.Structures[i], true
		}
	}

	return nil, false
}

// Names returns the structure names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Structures))
	for i := range f.Structures {
		names[i] = f.Structures[i].Name
	}

	return names
}

// Importer builds a dynamic importer for the structure, with exact field
// enforcement when the structure asks for it.
func (s *Structure) Importer() *importer.Dynamic {
	imp := importer.NewDynamic(s.Name, s.Fields)
	if s.Exact {
		imp.OnlyAllowExactFields()
	}

	return imp
}
