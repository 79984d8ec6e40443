package gen

import (
	"context"
	"go/token"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RootPkg is the import path of the package holding the interfaces the
// generated types implement.
const RootPkg = "github.com/syssam/sqlcrud"

// JenniferGenerator generates code using Jennifer instead of templates.
// Imports are tracked by Jennifer and each file is rendered by one
// goroutine.
type JenniferGenerator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string
	log     *zap.Logger
	metrics metrics

	// Dialect generator for the statement code.
	dialect MinimalDialect
}

// NewJenniferGenerator creates a new Jennifer-based generator.
// You must call WithDialect() to set a dialect before calling Generate().
//
// Example:
//
//	import "github.com/syssam/sqlcrud/compiler/gen/sql"
//
//	gen := gen.NewJenniferGenerator(graph, outDir)
//	gen.WithDialect(sql.NewDialect(gen))
//	gen.Generate(ctx)
func NewJenniferGenerator(g *Graph, outDir string) *JenniferGenerator {
	return &JenniferGenerator{
		graph:   g,
		workers: runtime.GOMAXPROCS(0),
		outDir:  outDir,
		pkg:     filepath.Base(outDir),
		log:     zap.NewNop(),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *JenniferGenerator) WithPackage(pkg string) *JenniferGenerator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithLogger sets the logger receiving a debug entry per written file.
func (g *JenniferGenerator) WithLogger(l *zap.Logger) *JenniferGenerator {
	if l != nil {
		g.log = l
	}
	return g
}

// WithDialect sets the dialect generator.
func (g *JenniferGenerator) WithDialect(d MinimalDialect) *JenniferGenerator {
	if d != nil {
		g.dialect = d
	}
	return g
}

// Metrics returns the file counts of the last Generate call.
func (g *JenniferGenerator) Metrics() WriterMetrics {
	return g.metrics.snapshot()
}

// Generate generates all files with parallel execution.
// Returns an error if no dialect has been set via WithDialect().
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if g.dialect == nil {
		return NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Generate()")
	}
	if !token.IsIdentifier(g.pkg) {
		return NewConfigError("Package", g.pkg, "package name is not a valid Go identifier")
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return NewGenerationError("statements", g.outDir, "cannot create target directory", err)
	}
	g.metrics.reset()

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)

	for _, t := range g.graph.Nodes {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.writeFile("statements", g.dialect.GenStatements(t), t.FileName())
		})
	}
	if g.FeatureEnabled(FeatureAssert.Name) && len(g.graph.Nodes) > 0 {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.writeFile("assert", g.dialect.GenAssert(), AssertFile)
		})
	}
	return errg.Wait()
}

// =============================================================================
// GeneratorHelper interface implementation
// These exported methods allow dialect packages to access helper functionality.
// =============================================================================

// NewFile creates a new Jennifer file with the header comment.
func (g *JenniferGenerator) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	header := DefaultHeader
	if g.graph != nil && g.graph.Config != nil {
		header = g.graph.Output().Header
	}
	f.HeaderComment(header)
	return f
}

// Pkg returns the output package name.
func (g *JenniferGenerator) Pkg() string {
	return g.pkg
}

// Graph returns the graph being generated.
func (g *JenniferGenerator) Graph() *Graph {
	return g.graph
}

// FeatureEnabled reports whether the named feature is enabled.
func (g *JenniferGenerator) FeatureEnabled(name string) bool {
	if g.graph == nil || g.graph.Config == nil {
		return false
	}
	enabled, _ := g.graph.FeatureEnabled(name)
	return enabled
}

// RootPkg returns the import path of the sqlcrud package.
func (g *JenniferGenerator) RootPkg() string {
	return RootPkg
}

// Verify JenniferGenerator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*JenniferGenerator)(nil)
