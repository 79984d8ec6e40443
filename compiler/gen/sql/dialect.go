package sql

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/sqlcrud/compiler/gen"
)

// Generate is a convenience function to generate the statement methods
// using the Jennifer generator. The configured hooks are applied by the
// graph.
//
// Example:
//
//	import "github.com/syssam/sqlcrud/compiler/gen/sql"
//	err := sql.Generate(graph)
func Generate(g *gen.Graph) error {
	return GenerateContext(context.Background(), g)
}

// GenerateContext is like Generate with a context bounding the file writes.
func GenerateContext(ctx context.Context, g *gen.Graph) error {
	if g.Config == nil || g.Config.Target == "" {
		return gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	if g.Config.Dialect == nil {
		g.Config.Dialect = New
	}
	return g.GenContext(ctx)
}

// New returns the SQL dialect generator as a gen.DialectFunc.
func New(helper gen.GeneratorHelper) gen.MinimalDialect {
	return NewDialect(helper)
}

// Dialect implements gen.MinimalDialect. For each type it generates
// value-receiver methods building the INSERT, UPDATE, DELETE and SELECT
// statement text from a table name and a placeholder prefix.
type Dialect struct {
	helper gen.GeneratorHelper
}

// NewDialect creates a new SQL dialect generator.
// The helper parameter should be a *gen.JenniferGenerator.
func NewDialect(helper gen.GeneratorHelper) *Dialect {
	return &Dialect{helper: helper}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "sql"
}

// GenStatements generates the statement file ({type}_sqlcrud.go).
// Includes: statement methods and, with the matching features, the static
// functions, the table constant and the columns variable.
func (d *Dialect) GenStatements(t *gen.Type) *jen.File {
	return genStatements(d.helper, t)
}

// GenAssert generates sqlcrud_assert.go.
func (d *Dialect) GenAssert() *jen.File {
	return genAssert(d.helper)
}

var _ gen.MinimalDialect = (*Dialect)(nil)
