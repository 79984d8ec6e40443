package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the document layout of a YAML descriptor file.
type File struct {
	Schemas []*Schema `yaml:"schemas"`
}

// Decode reads a descriptor document from r and validates every schema.
func Decode(r io.Reader) ([]*Schema, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlcrud: decode schema descriptor: %w", err)
	}
	for i, s := range f.Schemas {
		if s == nil {
			return nil, fmt.Errorf("sqlcrud: schema descriptor %d is empty", i)
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Schemas, nil
}

// ReadFile reads and validates the descriptor file at path.
func ReadFile(path string) ([]*Schema, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	schemas, err := Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schemas, nil
}

// Encode writes the schemas to w as a descriptor document.
func Encode(w io.Writer, schemas ...*Schema) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Schemas: schemas}); err != nil {
		return err
	}
	return enc.Close()
}
