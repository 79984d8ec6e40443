package schema

import (
	"slices"

	"github.com/go-openapi/inflect"
	"github.com/iancoleman/strcase"

	"github.com/syssam/sqlcrud"
)

// Field is a single column of a record shape.
type Field struct {
	// Name is the SQL column name.
	Name string `yaml:"name"`
	// GoName is the struct field name. Empty for schemas that were not
	// loaded from Go code.
	GoName string `yaml:"go_name,omitempty"`
	// Type is informational: the Go type for struct schemas, the database
	// type for introspected ones. It never affects statement text.
	Type string `yaml:"type,omitempty"`
	// ID marks the identifier column.
	ID bool `yaml:"id,omitempty"`
}

// Schema is an ordered list of fields with at most one identifier.
type Schema struct {
	// Name is the Go type name.
	Name string `yaml:"name"`
	// Table is an optional default table name. Statement operations always
	// take the table as an argument and never read it.
	Table  string   `yaml:"table,omitempty"`
	Fields []*Field `yaml:"fields"`
}

// Columns returns the column names in declaration order.
func (s *Schema) Columns() []string {
	columns := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		columns[i] = f.Name
	}
	return columns
}

// IDs returns all fields marked as identifier.
func (s *Schema) IDs() []*Field {
	var ids []*Field
	for _, f := range s.Fields {
		if f.ID {
			ids = append(ids, f)
		}
	}
	return ids
}

// HasID reports if the schema has at least one identifier field.
func (s *Schema) HasID() bool {
	return slices.ContainsFunc(s.Fields, func(f *Field) bool { return f.ID })
}

// ID returns the identifier field. It fails with an *sqlcrud.IDError unless
// exactly one field is marked as identifier.
func (s *Schema) ID() (*Field, error) {
	ids := s.IDs()
	if len(ids) != 1 {
		return nil, sqlcrud.NewIDError(s.Label(), len(ids))
	}
	return ids[0], nil
}

// Label returns the name used in error messages.
func (s *Schema) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return "schema"
}

// DefaultTable returns Table if set, or the pluralized snake_case form of
// the type name ("OrderItem" becomes "order_items").
func (s *Schema) DefaultTable() string {
	if s.Table != "" {
		return s.Table
	}
	return inflect.Pluralize(strcase.ToSnake(s.Name))
}

// Clone returns a deep copy of the schema.
func (s *Schema) Clone() *Schema {
	c := &Schema{Name: s.Name, Table: s.Table, Fields: make([]*Field, len(s.Fields))}
	for i, f := range s.Fields {
		cf := *f
		c.Fields[i] = &cf
	}
	return c
}

// GoName returns the exported Go identifier for a column name
// ("created_at" becomes "CreatedAt").
func GoName(column string) string {
	return strcase.ToCamel(column)
}
