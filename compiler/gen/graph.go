package gen

import (
	"bufio"
	"context"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/syssam/sqlcrud/schema"
)

type (
	// Graph holds the types to generate and the shared configuration.
	Graph struct {
		*Config
		// Nodes are the types in load order.
		Nodes []*Type
	}

	// Generator is the interface that wraps the Generate method.
	Generator interface {
		// Generate generates the code for the given graph.
		Generate(context.Context, *Graph) error
	}

	// GenerateFunc type is an adapter to allow the use of ordinary
	// function as Generator. If f is a function with the appropriate
	// signature, GenerateFunc(f) is a Generator that calls f.
	GenerateFunc func(context.Context, *Graph) error

	// Hook defines the "generate middleware". A function that gets a Generator
	// and returns a Generator. For example:
	//
	//	hook := func(next gen.Generator) gen.Generator {
	//		return gen.GenerateFunc(func(ctx context.Context, g *gen.Graph) error {
	//			fmt.Println("Graph:", g)
	//			return next.Generate(ctx, g)
	//		})
	//	}
	//
	Hook func(Generator) Generator
)

// Generate calls f(ctx, g).
func (f GenerateFunc) Generate(ctx context.Context, g *Graph) error {
	return f(ctx, g)
}

// generatedRe matches the header line of generated Go files.
var generatedRe = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// NewGraph creates a new Graph for the code generation from the given schemas.
func NewGraph(c *Config, schemas ...*schema.Schema) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	g := &Graph{Config: c, Nodes: make([]*Type, 0, len(schemas))}
	names := make(map[string]struct{}, len(schemas))
	files := make(map[string]string, len(schemas))
	for _, s := range schemas {
		if s == nil {
			return nil, NewSchemaError("", "", "nil schema", nil)
		}
		if _, ok := names[s.Name]; ok {
			return nil, NewSchemaError(s.Name, "", "type redeclared", nil)
		}
		t, err := NewType(c, s)
		if err != nil {
			return nil, err
		}
		if other, ok := files[t.FileName()]; ok {
			return nil, NewValidationError(t.Name, "", t.FileName(), "generated file name collides with type "+other)
		}
		names[t.Name] = struct{}{}
		files[t.FileName()] = t.Name
		g.Nodes = append(g.Nodes, t)
	}
	if err := g.checkIdents(); err != nil {
		return nil, err
	}
	return g, nil
}

// checkIdents rejects package-level identifiers that collide with a type
// name or with an identifier generated for another type.
func (g *Graph) checkIdents() error {
	owner := make(map[string]string, len(g.Nodes))
	for _, t := range g.Nodes {
		owner[t.Name] = t.Name
	}
	for _, t := range g.Nodes {
		for _, id := range t.Idents() {
			if other, ok := owner[id]; ok {
				return NewValidationError(t.Name, id, nil, "identifier collides with type "+other)
			}
			owner[id] = t.Name
		}
	}
	return nil
}

// Gen generates the artifacts for the graph.
func (g *Graph) Gen() error {
	return g.GenContext(context.Background())
}

// GenContext generates the artifacts for the graph. The configured hooks
// wrap the generator in the order they were added.
func (g *Graph) GenContext(ctx context.Context) error {
	var gen Generator = GenerateFunc(generate)
	if g.Config.Generator != nil {
		gen = g.Config.Generator
	}
	for i := len(g.Hooks) - 1; i >= 0; i-- {
		gen = g.Hooks[i](gen)
	}
	return gen.Generate(ctx, g)
}

// Type returns the node with the given name.
func (g *Graph) Type(name string) (*Type, bool) {
	for _, t := range g.Nodes {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// generate is the default Generator of the graph.
func generate(ctx context.Context, g *Graph) error {
	if g.Dialect == nil {
		return NewConfigError("Dialect", nil, "no dialect configured")
	}
	if g.Target == "" {
		return NewConfigError("Target", nil, "target directory cannot be empty")
	}
	out := g.Output()
	if !token.IsIdentifier(out.Package) {
		return NewConfigError("Package", out.Package, "package name is not a valid Go identifier, set it explicitly")
	}
	for _, f := range AllFeatures {
		if f.cleanup == nil {
			continue
		}
		if enabled, _ := g.FeatureEnabled(f.Name); !enabled {
			if err := f.cleanup(g.Config); err != nil {
				return NewGenerationError("cleanup", "", "feature "+f.Name, err)
			}
		}
	}
	if len(g.Names) == 0 {
		if err := g.removeStale(); err != nil {
			return NewGenerationError("cleanup", "", "stale files", err)
		}
		// The assertions of an empty graph refer to types that are gone.
		if len(g.Nodes) == 0 {
			if err := remove(g.Target, AssertFile); err != nil {
				return NewGenerationError("cleanup", AssertFile, "stale assertions", err)
			}
		}
	}
	jg := NewJenniferGenerator(g, out.Target).
		WithPackage(out.Package).
		WithWorkers(g.Workers).
		WithLogger(g.logger())
	jg.WithDialect(g.Dialect(jg))
	return jg.Generate(ctx)
}

// removeStale deletes generated statement files of types that are no
// longer part of the graph.
func (g *Graph) removeStale() error {
	matches, err := filepath.Glob(filepath.Join(g.Target, "*_sqlcrud.go"))
	if err != nil {
		return err
	}
	keep := make(map[string]struct{}, len(g.Nodes))
	for _, t := range g.Nodes {
		keep[t.FileName()] = struct{}{}
	}
	for _, path := range matches {
		if _, ok := keep[filepath.Base(path)]; ok {
			continue
		}
		generated, err := isGenerated(path)
		if err != nil {
			return err
		}
		if generated {
			g.logger().Debug("remove stale file", zap.String("path", path))
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}
	return nil
}

// isGenerated reports whether the file starts with a generated-code header.
func isGenerated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case generatedRe.MatchString(line):
			return true, nil
		case strings.HasPrefix(line, "//"):
			continue
		default:
			return false, nil
		}
	}
	return false, sc.Err()
}
