// Package statement renders the SQL statement text of a schema.
//
// Statements are first compiled into a Template: a sequence of literal text
// and two kinds of holes, the table name and the placeholder prefix. Templates
// are rendered at call time with the table and prefix arguments:
//
//	tmpl, _ := statement.CreateTemplate(s)
//	tmpl.Render("persons", "$") // INSERT INTO persons (id, name) VALUES ($1,$2);
//
// The same templates drive both the runtime Builder and the generated Go code,
// so a generated method and the runtime builder always produce the same text.
package statement

import (
	"strconv"
	"strings"

	"github.com/syssam/sqlcrud/schema"
)

// PartKind is the kind of a template part.
type PartKind int

const (
	// Literal parts are copied verbatim.
	Literal PartKind = iota
	// TableName parts are replaced by the table argument.
	TableName
	// ParamPrefix parts are replaced by the prefix argument.
	ParamPrefix
)

// String returns the part kind name.
func (k PartKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case TableName:
		return "table"
	case ParamPrefix:
		return "prefix"
	default:
		return "PartKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Part is a single piece of a template. Text is only set for literals.
type Part struct {
	Kind PartKind
	Text string
}

// Template is parameterized statement text. Adjacent literals are merged.
type Template []Part

// Render returns the statement text for the given table and prefix.
func (t Template) Render(table, prefix string) string {
	var b strings.Builder
	n := 0
	for _, p := range t {
		switch p.Kind {
		case TableName:
			n += len(table)
		case ParamPrefix:
			n += len(prefix)
		default:
			n += len(p.Text)
		}
	}
	b.Grow(n)
	for _, p := range t {
		switch p.Kind {
		case TableName:
			b.WriteString(table)
		case ParamPrefix:
			b.WriteString(prefix)
		default:
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// String renders the template with {table} and {prefix} markers.
func (t Template) String() string {
	return t.Render("{table}", "{prefix}")
}

// Placeholder returns the n-th (1-based) parameter placeholder for prefix.
func Placeholder(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}

// builder accumulates template parts.
type builder struct {
	parts Template
}

func (b *builder) lit(s string) *builder {
	if s == "" {
		return b
	}
	if last := len(b.parts) - 1; last >= 0 && b.parts[last].Kind == Literal {
		b.parts[last].Text += s
		return b
	}
	b.parts = append(b.parts, Part{Kind: Literal, Text: s})
	return b
}

func (b *builder) table() *builder {
	b.parts = append(b.parts, Part{Kind: TableName})
	return b
}

// param appends the n-th placeholder.
func (b *builder) param(n int) *builder {
	b.parts = append(b.parts, Part{Kind: ParamPrefix})
	return b.lit(strconv.Itoa(n))
}

// CreateTemplate returns the template of
//
//	INSERT INTO {table} (f1, f2, ...) VALUES ({prefix}1,{prefix}2,...);
func CreateTemplate(s *schema.Schema) (Template, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	b := &builder{}
	b.lit("INSERT INTO ").table().lit(" (" + strings.Join(s.Columns(), ", ") + ") VALUES (")
	for i := range s.Fields {
		if i > 0 {
			b.lit(",")
		}
		b.param(i + 1)
	}
	b.lit(");")
	return b.parts, nil
}

// UpdateTemplate returns the template of
//
//	UPDATE {table} SET (f1 = {prefix}1, f2 = {prefix}2, ...);
func UpdateTemplate(s *schema.Schema) (Template, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	b := &builder{}
	b.lit("UPDATE ").table().lit(" SET (")
	for i, f := range s.Fields {
		if i > 0 {
			b.lit(", ")
		}
		b.lit(f.Name + " = ").param(i + 1)
	}
	b.lit(");")
	return b.parts, nil
}

// DeleteTemplate returns the template of
//
//	DELETE FROM {table} WHERE {id} = {prefix}1;
//
// The schema must have exactly one identifier field.
func DeleteTemplate(s *schema.Schema) (Template, error) {
	id, err := idField(s)
	if err != nil {
		return nil, err
	}
	b := &builder{}
	b.lit("DELETE FROM ").table().lit(" WHERE " + id.Name + " = ").param(1).lit(";")
	return b.parts, nil
}

// GetByIDTemplate returns the template of
//
//	SELECT f1, f2, ... FROM {table} WHERE {id} = {prefix}1;
//
// The schema must have exactly one identifier field.
func GetByIDTemplate(s *schema.Schema) (Template, error) {
	id, err := idField(s)
	if err != nil {
		return nil, err
	}
	b := &builder{}
	b.lit("SELECT " + strings.Join(s.Columns(), ", ") + " FROM ").table().
		lit(" WHERE " + id.Name + " = ").param(1).lit(";")
	return b.parts, nil
}

func idField(s *schema.Schema) (*schema.Field, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.ID()
}
