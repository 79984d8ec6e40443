package gen

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/syssam/sqlcrud/schema"
	"github.com/syssam/sqlcrud/statement"
)

// The following types and their exported methods used by the codegen
// to generate the assets.
type (
	// Type represents one record type in the graph and the statements
	// generated for it.
	Type struct {
		*Config
		schema *schema.Schema
		// Name holds the Go type name.
		Name string
		// Table holds the default table name.
		Table string
		// ID holds the identifier field, or nil.
		ID *Field
		// Fields holds all the fields of this type in declaration order.
		Fields []*Field
		// Statements holds the statement templates in method order.
		Statements []*Statement
	}

	// Field holds the information of a type field.
	Field struct {
		// Name is the column name.
		Name string
		// GoName is the struct field name. Empty for descriptors that were
		// not loaded from Go code.
		GoName string
		// Type is the Go type (or the database type for introspected tables).
		Type string
		// ID marks the identifier field.
		ID bool
		// Position is the 1-based placeholder number of the field.
		Position int
	}

	// Statement is one generated statement of a type.
	Statement struct {
		Op       statement.Op
		Template statement.Template
	}
)

// globalIdent holds identifiers used by the generated files that a type
// name must not shadow.
var globalIdent = map[string]struct{}{
	"sqlcrud": {},
	"table":   {},
	"prefix":  {},
}

// NewType creates a new type, its fields and statements from the given schema.
func NewType(c *Config, s *schema.Schema) (*Type, error) {
	if err := ValidSchemaName(s.Name); err != nil {
		return nil, NewSchemaError(s.Name, "", "invalid type name", err)
	}
	if err := s.Validate(); err != nil {
		return nil, NewSchemaError(s.Name, "", "", err)
	}
	typ := &Type{
		Config: c,
		schema: s,
		Name:   s.Name,
		Table:  s.DefaultTable(),
		Fields: make([]*Field, 0, len(s.Fields)),
	}
	for i, f := range s.Fields {
		tf := &Field{
			Name:     f.Name,
			GoName:   f.GoName,
			Type:     f.Type,
			ID:       f.ID,
			Position: i + 1,
		}
		if f.ID {
			typ.ID = tf
		}
		typ.Fields = append(typ.Fields, tf)
	}
	for _, op := range statement.OpsFor(s) {
		tmpl, err := op.Template(s)
		if err != nil {
			return nil, NewSchemaError(s.Name, "", op.String(), err)
		}
		typ.Statements = append(typ.Statements, &Statement{Op: op, Template: tmpl})
	}
	if err := typ.checkMethods(); err != nil {
		return nil, err
	}
	return typ, nil
}

// checkMethods rejects struct fields whose names collide with the
// generated methods.
func (t *Type) checkMethods() error {
	for _, st := range t.Statements {
		for _, f := range t.Fields {
			if f.GoName == st.Op.Method() {
				return NewValidationError(t.Name, f.GoName, nil, "field and generated method have the same name")
			}
		}
	}
	return nil
}

// Schema returns the schema the type was created from.
func (t Type) Schema() *schema.Schema {
	return t.schema
}

// Label returns the label name of the type (snake_case).
func (t Type) Label() string {
	return strcase.ToSnake(t.Name)
}

// FileName returns the name of the generated file of the type.
func (t Type) FileName() string {
	return t.Label() + "_sqlcrud.go"
}

// HasID reports whether the type has an identifier field.
func (t Type) HasID() bool {
	return t.ID != nil
}

// Columns returns the column names in declaration order.
func (t Type) Columns() []string {
	columns := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		columns[i] = f.Name
	}
	return columns
}

// Ops returns the operations generated for the type.
func (t Type) Ops() []statement.Op {
	ops := make([]statement.Op, len(t.Statements))
	for i, st := range t.Statements {
		ops[i] = st.Op
	}
	return ops
}

// Template returns the template of the given operation.
func (t Type) Template(op statement.Op) (statement.Template, bool) {
	for _, st := range t.Statements {
		if st.Op == op {
			return st.Template, true
		}
	}
	return nil, false
}

// StaticName returns the name of the package-level function of op.
func (t Type) StaticName(op statement.Op) string {
	return t.Name + op.Method()
}

// TableConst returns the name of the default table constant.
func (t Type) TableConst() string {
	return t.Name + "Table"
}

// ColumnsVar returns the name of the columns variable.
func (t Type) ColumnsVar() string {
	return t.Name + "Columns"
}

// Idents returns the package-level identifiers declared for the type under
// the enabled features.
func (t Type) Idents() []string {
	var idents []string
	if t.Config == nil {
		return idents
	}
	if ok, _ := t.FeatureEnabled(FeatureStatic.Name); ok {
		for _, op := range t.Ops() {
			idents = append(idents, t.StaticName(op))
		}
	}
	if ok, _ := t.FeatureEnabled(FeatureTable.Name); ok {
		idents = append(idents, t.TableConst())
	}
	if ok, _ := t.FeatureEnabled(FeatureColumns.Name); ok {
		idents = append(idents, t.ColumnsVar())
	}
	return idents
}

// ValidSchemaName will determine if a name is going to conflict with any
// pre-defined names or contains unsafe characters.
func ValidSchemaName(name string) error {
	// Check for empty name.
	if name == "" {
		return errors.New("schema name cannot be empty")
	}
	// The name becomes part of a file name.
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("schema name %q contains path separator characters", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("schema name %q contains parent directory reference", name)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("schema name %q cannot start with a dot", name)
	}
	if !token.IsIdentifier(name) {
		return fmt.Errorf("schema name %q is not a valid Go identifier", name)
	}
	if types.Universe.Lookup(name) != nil {
		return fmt.Errorf("schema name conflicts with Go predeclared identifier %q", name)
	}
	if _, ok := globalIdent[name]; ok {
		return fmt.Errorf("schema name conflicts with sqlcrud predeclared identifier %q", name)
	}
	return nil
}
