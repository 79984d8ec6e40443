package gen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/syssam/sqlcrud/schema"
)

// stubDialect renders the create template of each type as a constant.
type stubDialect struct {
	helper GeneratorHelper
}

func newStubDialect(h GeneratorHelper) MinimalDialect {
	return &stubDialect{helper: h}
}

func (d *stubDialect) Name() string { return "stub" }

func (d *stubDialect) GenStatements(t *Type) *jen.File {
	f := d.helper.NewFile(d.helper.Pkg())
	f.Const().Id(t.Name + "Create").Op("=").Lit(t.Statements[0].Template.String())
	return f
}

func (d *stubDialect) GenAssert() *jen.File {
	f := d.helper.NewFile(d.helper.Pkg())
	f.Var().Id("_").Op("=").Qual(d.helper.RootPkg(), "ErrMissingID")
	return f
}

func noteSchema() *schema.Schema {
	return &schema.Schema{Name: "Note", Fields: []*schema.Field{{Name: "body"}}}
}

func TestJenniferGenerator(t *testing.T) {
	t.Run("creates generator with graph", func(t *testing.T) {
		target := t.TempDir()
		graph, err := NewGraph(&Config{Target: target}, personSchema())
		require.NoError(t, err)

		gen := NewJenniferGenerator(graph, target)
		require.NotNil(t, gen)
		assert.Equal(t, graph, gen.Graph())
		assert.Equal(t, filepath.Base(target), gen.Pkg())
		assert.Equal(t, "persons", gen.WithPackage("persons").Pkg())
		assert.Equal(t, RootPkg, gen.RootPkg())
		assert.True(t, gen.FeatureEnabled(FeatureAssert.Name))
		assert.False(t, gen.FeatureEnabled("unknown"))
	})

	t.Run("requires a dialect", func(t *testing.T) {
		graph, err := NewGraph(&Config{}, personSchema())
		require.NoError(t, err)

		err = NewJenniferGenerator(graph, t.TempDir()).Generate(context.Background())
		assert.True(t, IsConfigError(err))
	})

	t.Run("requires a valid package name", func(t *testing.T) {
		graph, err := NewGraph(&Config{}, personSchema())
		require.NoError(t, err)

		jg := NewJenniferGenerator(graph, filepath.Join(t.TempDir(), "001"))
		jg.WithDialect(newStubDialect(jg))
		assert.True(t, IsConfigError(jg.Generate(context.Background())))
		assert.NoError(t, jg.WithPackage("persons").Generate(context.Background()))
	})

	t.Run("header", func(t *testing.T) {
		graph, err := NewGraph(&Config{Header: "Code generated by make. DO NOT EDIT."}, personSchema())
		require.NoError(t, err)

		f := NewJenniferGenerator(graph, t.TempDir()).NewFile("persons")
		assert.Contains(t, f.GoString(), "// Code generated by make. DO NOT EDIT.")
	})
}

func TestGraphValidation(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewGraph(nil)
		assert.True(t, IsConfigError(err))
	})

	t.Run("redeclared type", func(t *testing.T) {
		_, err := NewGraph(&Config{}, personSchema(), personSchema())
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
		assert.Contains(t, err.Error(), "redeclared")
	})

	t.Run("file name collision", func(t *testing.T) {
		_, err := NewGraph(&Config{},
			&schema.Schema{Name: "BlogPost", Fields: []*schema.Field{{Name: "a"}}},
			&schema.Schema{Name: "Blog_Post", Fields: []*schema.Field{{Name: "a"}}},
		)
		assert.True(t, IsValidationError(err))
	})

	t.Run("identifier collision", func(t *testing.T) {
		_, err := NewGraph(&Config{Features: []Feature{FeatureTable}},
			personSchema(),
			&schema.Schema{Name: "PersonTable", Fields: []*schema.Field{{Name: "a"}}},
		)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "collides with type PersonTable")
	})

	t.Run("invalid schema", func(t *testing.T) {
		_, err := NewGraph(&Config{}, &schema.Schema{Name: "Empty"})
		assert.True(t, IsSchemaError(err))
	})
}

func TestGraphNodes(t *testing.T) {
	graph, err := NewGraph(&Config{}, personSchema(), noteSchema())
	require.NoError(t, err)

	require.Len(t, graph.Nodes, 2)
	assert.Equal(t, "Person", graph.Nodes[0].Name)
	n, ok := graph.Type("Note")
	require.True(t, ok)
	assert.False(t, n.HasID())
	_, ok = graph.Type("Missing")
	assert.False(t, ok)
}

func TestGraphGen(t *testing.T) {
	target := t.TempDir()
	graph, err := NewGraph(&Config{Target: target, Package: "model", Dialect: newStubDialect}, personSchema(), noteSchema())
	require.NoError(t, err)
	require.NoError(t, graph.Gen())

	content, err := os.ReadFile(filepath.Join(target, "person_sqlcrud.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "// Code generated by sqlcrud. DO NOT EDIT.")
	assert.Contains(t, string(content), "package model")
	assert.Contains(t, string(content), `"INSERT INTO {table} (id, name) VALUES ({prefix}1,{prefix}2);"`)
	assert.FileExists(t, filepath.Join(target, "note_sqlcrud.go"))
	assert.FileExists(t, filepath.Join(target, AssertFile))

	t.Run("idempotent", func(t *testing.T) {
		require.NoError(t, graph.Gen())
		again, err := os.ReadFile(filepath.Join(target, "person_sqlcrud.go"))
		require.NoError(t, err)
		assert.Equal(t, content, again)
	})

	t.Run("stale files", func(t *testing.T) {
		handwritten := filepath.Join(target, "custom_sqlcrud.go")
		require.NoError(t, os.WriteFile(handwritten, []byte("package model\n"), 0o644))

		graph, err := NewGraph(&Config{Target: target, Package: "model", Dialect: newStubDialect}, personSchema())
		require.NoError(t, err)
		require.NoError(t, graph.Gen())

		assert.NoFileExists(t, filepath.Join(target, "note_sqlcrud.go"))
		assert.FileExists(t, handwritten)
		assert.FileExists(t, filepath.Join(target, "person_sqlcrud.go"))
	})

	t.Run("disabled feature cleanup", func(t *testing.T) {
		graph, err := NewGraph(&Config{
			Target:   target,
			Package:  "model",
			Dialect:  newStubDialect,
			Disabled: []string{FeatureAssert.Name},
		}, personSchema())
		require.NoError(t, err)
		require.NoError(t, graph.Gen())
		assert.NoFileExists(t, filepath.Join(target, AssertFile))
	})

	t.Run("empty graph", func(t *testing.T) {
		require.NoError(t, graph.Gen())
		require.FileExists(t, filepath.Join(target, AssertFile))

		empty, err := NewGraph(&Config{Target: target, Package: "model", Dialect: newStubDialect})
		require.NoError(t, err)
		require.NoError(t, empty.Gen())
		assert.NoFileExists(t, filepath.Join(target, AssertFile))
		assert.NoFileExists(t, filepath.Join(target, "person_sqlcrud.go"))
		assert.FileExists(t, filepath.Join(target, "custom_sqlcrud.go"))
	})
}

func TestGraphGen_Errors(t *testing.T) {
	t.Run("missing dialect", func(t *testing.T) {
		graph, err := NewGraph(&Config{Target: t.TempDir()}, personSchema())
		require.NoError(t, err)
		assert.True(t, IsConfigError(graph.Gen()))
	})

	t.Run("missing target", func(t *testing.T) {
		graph, err := NewGraph(&Config{Dialect: newStubDialect}, personSchema())
		require.NoError(t, err)
		assert.True(t, IsConfigError(graph.Gen()))
	})

	t.Run("canceled", func(t *testing.T) {
		graph, err := NewGraph(&Config{Target: t.TempDir(), Package: "model", Dialect: newStubDialect}, personSchema())
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.True(t, errors.Is(graph.GenContext(ctx), context.Canceled))
	})

	t.Run("unwritable target", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		graph, err := NewGraph(&Config{Target: filepath.Join(file, "sub"), Dialect: newStubDialect}, personSchema())
		require.NoError(t, err)
		err = graph.Gen()
		require.Error(t, err)
	})

	t.Run("invalid package name", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "my-model")
		graph, err := NewGraph(&Config{Target: target, Dialect: newStubDialect}, personSchema())
		require.NoError(t, err)
		err = graph.Gen()
		require.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), `"Package"`)
		assert.NoDirExists(t, target)
	})
}

func TestGenerateWithHooks(t *testing.T) {
	var order []string
	hook := func(name string) Hook {
		return func(next Generator) Generator {
			return GenerateFunc(func(ctx context.Context, g *Graph) error {
				order = append(order, name)
				return next.Generate(ctx, g)
			})
		}
	}

	graph, err := NewGraph(&Config{
		Target:  t.TempDir(),
		Package: "model",
		Dialect: newStubDialect,
		Hooks:   []Hook{hook("first"), hook("second")},
	}, personSchema())
	require.NoError(t, err)

	require.NoError(t, graph.Gen())
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestGenerateWithGenerator(t *testing.T) {
	called := false
	graph, err := NewGraph(&Config{
		Generator: GenerateFunc(func(_ context.Context, g *Graph) error {
			called = true
			assert.Len(t, g.Nodes, 1)
			return nil
		}),
	}, personSchema())
	require.NoError(t, err)
	require.NoError(t, graph.Gen())
	assert.True(t, called)
}

func TestGenerateLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	graph, err := NewGraph(&Config{
		Target:  t.TempDir(),
		Package: "model",
		Dialect: newStubDialect,
		Logger:  zap.New(core),
		Workers: 1,
	}, personSchema())
	require.NoError(t, err)
	require.NoError(t, graph.Gen())
	assert.Equal(t, 2, logs.FilterMessage("file written").Len())

	require.NoError(t, graph.Gen())
	assert.Equal(t, 2, logs.FilterMessage("file unchanged").Len())
}

func BenchmarkGraph_Gen(b *testing.B) {
	target := b.TempDir()
	graph, err := NewGraph(&Config{Target: target, Package: "model", Dialect: newStubDialect}, personSchema(), noteSchema())
	require.NoError(b, err)
	for b.Loop() {
		require.NoError(b, graph.Gen())
	}
}
