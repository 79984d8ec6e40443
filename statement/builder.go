package statement

import (
	"github.com/syssam/sqlcrud"
	"github.com/syssam/sqlcrud/schema"
)

// Writer renders INSERT and UPDATE statements of a schema. It is the
// runtime counterpart of the methods generated for types without an
// identifier field.
type Writer struct {
	schema *schema.Schema
	create Template
	update Template
}

// NewWriter compiles the create and update templates of s. The schema must
// have at least one field and at most one identifier.
func NewWriter(s *schema.Schema) (*Writer, error) {
	create, err := CreateTemplate(s)
	if err != nil {
		return nil, err
	}
	update, err := UpdateTemplate(s)
	if err != nil {
		return nil, err
	}
	return &Writer{schema: s.Clone(), create: create, update: update}, nil
}

// Schema returns a copy of the schema the writer was built from.
func (w *Writer) Schema() *schema.Schema {
	return w.schema.Clone()
}

// CreateSQL returns the INSERT statement.
func (w *Writer) CreateSQL(table, prefix string) string {
	return w.create.Render(table, prefix)
}

// UpdateSQL returns the UPDATE statement.
func (w *Writer) UpdateSQL(table, prefix string) string {
	return w.update.Render(table, prefix)
}

// Builder renders all four statements of a schema with exactly one
// identifier field.
type Builder struct {
	*Writer
	delete Template
	get    Template
}

// New compiles all statement templates of s.
func New(s *schema.Schema) (*Builder, error) {
	w, err := NewWriter(s)
	if err != nil {
		return nil, err
	}
	del, err := DeleteTemplate(s)
	if err != nil {
		return nil, err
	}
	get, err := GetByIDTemplate(s)
	if err != nil {
		return nil, err
	}
	return &Builder{Writer: w, delete: del, get: get}, nil
}

// Of returns the Builder of the struct type of v.
func Of(v any, opts ...schema.Option) (*Builder, error) {
	s, err := schema.Of(v, opts...)
	if err != nil {
		return nil, err
	}
	return New(s)
}

// DeleteSQL returns the DELETE statement.
func (b *Builder) DeleteSQL(table, prefix string) string {
	return b.delete.Render(table, prefix)
}

// GetByIDSQL returns the SELECT statement.
func (b *Builder) GetByIDSQL(table, prefix string) string {
	return b.get.Render(table, prefix)
}

var (
	_ sqlcrud.Writer     = (*Writer)(nil)
	_ sqlcrud.Statements = (*Builder)(nil)
)
