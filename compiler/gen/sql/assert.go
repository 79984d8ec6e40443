package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/sqlcrud/compiler/gen"
)

// genAssert generates the compile-time checks that each type implements
// sqlcrud.Statements, or sqlcrud.Writer when it has no identifier.
func genAssert(h gen.GeneratorHelper) *jen.File {
	f := h.NewFile(h.Pkg())
	f.Var().DefsFunc(func(group *jen.Group) {
		for _, t := range h.Graph().Nodes {
			iface := "Writer"
			if t.HasID() {
				iface = "Statements"
			}
			group.Id("_").Qual(h.RootPkg(), iface).Op("=").Id(t.Name).Values()
		}
	})
	return f
}
