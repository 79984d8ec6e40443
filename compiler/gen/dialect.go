package gen

import "github.com/dave/jennifer/jen"

// EntityGenerator generates per-type code.
// Each method is called once per type in the graph.
type EntityGenerator interface {
	// GenStatements generates the statement methods ({type}_sqlcrud.go).
	GenStatements(t *Type) *jen.File
}

// GraphGenerator generates graph-level code.
// Each method is called once per generation run.
type GraphGenerator interface {
	// GenAssert generates the interface assertions (sqlcrud_assert.go).
	GenAssert() *jen.File
}

// MinimalDialect is the interface a dialect generator must implement.
type MinimalDialect interface {
	// Name returns the dialect name (e.g., "sql").
	Name() string
	EntityGenerator
	GraphGenerator
}

// DialectFunc creates a dialect generator bound to a generator helper.
type DialectFunc func(GeneratorHelper) MinimalDialect

// GeneratorHelper provides helper methods for dialect implementations.
// JenniferGenerator implements this interface, allowing dialect packages
// to use helper methods without importing the full generator.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the configured header comment.
	NewFile(pkg string) *jen.File

	// Pkg returns the package name of the generated files.
	Pkg() string

	// Graph returns the graph being generated.
	Graph() *Graph

	// FeatureEnabled reports whether the named feature is enabled.
	FeatureEnabled(name string) bool

	// RootPkg returns the import path of the sqlcrud package.
	RootPkg() string
}
