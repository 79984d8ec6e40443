package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/sqlcrud/compiler/gen"
	"github.com/syssam/sqlcrud/statement"
)

// genStatements generates the statement file of t.
func genStatements(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := h.NewFile(h.Pkg())

	if h.FeatureEnabled(gen.FeatureTable.Name) {
		f.Line()
		f.Commentf("%s is the default table name of %s.", t.TableConst(), t.Name)
		f.Const().Id(t.TableConst()).Op("=").Lit(t.Table)
	}
	if h.FeatureEnabled(gen.FeatureColumns.Name) {
		f.Line()
		f.Commentf("%s holds the columns of %s in declaration order.", t.ColumnsVar(), t.Name)
		f.Var().Id(t.ColumnsVar()).Op("=").Index().String().ValuesFunc(func(group *jen.Group) {
			for _, c := range t.Columns() {
				group.Lit(c)
			}
		})
	}

	for _, st := range t.Statements {
		f.Line()
		f.Commentf("%s returns the %s statement for %s.", st.Op.Method(), st.Op.Verb(), t.Name)
		f.Func().Params(jen.Id(t.Name)).Id(st.Op.Method()).Add(signature()).Block(
			jen.Return(concat(st.Template)),
		)
	}

	if h.FeatureEnabled(gen.FeatureStatic.Name) {
		for _, st := range t.Statements {
			name := t.StaticName(st.Op)
			f.Line()
			f.Commentf("%s returns the %s statement for %s.", name, st.Op.Verb(), t.Name)
			f.Func().Id(name).Add(signature()).Block(
				jen.Return(concat(st.Template)),
			)
		}
	}
	return f
}

// signature returns the parameter and result list shared by all statement
// functions: (table, prefix string) string.
func signature() *jen.Statement {
	return jen.Params(jen.List(jen.Id("table"), jen.Id("prefix")).String()).String()
}

// concat returns the string concatenation that renders tmpl at run time.
func concat(tmpl statement.Template) *jen.Statement {
	expr := &jen.Statement{}
	for i, p := range tmpl {
		if i > 0 {
			expr.Op("+")
		}
		switch p.Kind {
		case statement.TableName:
			expr.Id("table")
		case statement.ParamPrefix:
			expr.Id("prefix")
		default:
			expr.Lit(p.Text)
		}
	}
	return expr
}
