package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/sqlcrud/compiler/gen"
	"github.com/syssam/sqlcrud/schema"
)

// mockHelper implements gen.GeneratorHelper for testing.
type mockHelper struct {
	graph    *gen.Graph
	features map[string]bool
}

func newMockHelper(features ...string) *mockHelper {
	m := &mockHelper{
		graph:    &gen.Graph{Config: &gen.Config{Target: "/tmp/persons", Package: "persons"}},
		features: map[string]bool{gen.FeatureAssert.Name: true},
	}
	for _, f := range features {
		m.features[f] = true
	}
	return m
}

func (m *mockHelper) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(gen.DefaultHeader)
	return f
}

func (m *mockHelper) Pkg() string                     { return "persons" }
func (m *mockHelper) Graph() *gen.Graph               { return m.graph }
func (m *mockHelper) FeatureEnabled(name string) bool { return m.features[name] }
func (m *mockHelper) RootPkg() string                 { return gen.RootPkg }

// Ensure mockHelper implements gen.GeneratorHelper.
var _ gen.GeneratorHelper = (*mockHelper)(nil)

// createTestType creates a Type from the given columns. The first column
// is the identifier when id is true.
func createTestType(name string, id bool, columns ...string) *gen.Type {
	s := &schema.Schema{Name: name}
	for i, c := range columns {
		s.Fields = append(s.Fields, &schema.Field{
			Name:   c,
			GoName: schema.GoName(c),
			ID:     id && i == 0,
		})
	}
	t, err := gen.NewType(&gen.Config{}, s)
	if err != nil {
		panic(err)
	}
	return t
}
