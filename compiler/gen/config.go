package gen

import (
	"fmt"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
)

// DefaultHeader is the header comment of generated files.
const DefaultHeader = "Code generated by sqlcrud. DO NOT EDIT."

type (
	// Config holds the global codegen configuration to be
	// shared between all generated nodes.
	Config struct {
		// Target defines the filepath for the target directory that
		// holds the generated code. For example:
		//
		//	./internal/model
		//
		Target string

		// Package defines the Go package name of the generated files.
		// Defaults to the base name of Target, which must then be a valid
		// Go identifier.
		Package string

		// Header allows users to provide an optional header signature for
		// the generated files. It must follow the "Code generated ... DO NOT
		// EDIT." convention for stale files to be detected.
		Header string

		// Tag is the struct tag key the schemas were loaded with.
		Tag string

		// Features defines a list of additional features to add to the codegen phase.
		Features []Feature

		// Disabled holds the names of default features turned off.
		Disabled []string

		// Hooks holds an optional list of Hooks to apply on the graph before/after the code-generation.
		Hooks []Hook

		// Generator is an optional generator that replaces the default one.
		Generator Generator

		// Dialect creates the dialect generator. Required by the default
		// generator.
		Dialect DialectFunc

		// BuildFlags holds a list of custom build flags to use
		// when loading the schema packages.
		BuildFlags []string

		// Names filters the loaded types. When set, stale files of other
		// types are left untouched.
		Names []string

		// Logger receives debug output of the generator. Defaults to a no-op
		// logger.
		Logger *zap.Logger

		// Workers bounds the number of files generated in parallel.
		// Defaults to GOMAXPROCS.
		Workers int
	}

	// OutputConfig is the part of the configuration that decides where and how
	// files are written.
	OutputConfig struct {
		Target  string
		Package string
		Header  string
	}
)

// FeatureEnabled reports if the given feature name is enabled.
// It's exported to be used by the dialect generators.
func (c Config) FeatureEnabled(name string) (bool, error) {
	for _, f := range AllFeatures {
		if name != f.Name {
			continue
		}
		if slices.Contains(c.Disabled, name) {
			return false, nil
		}
		if slices.ContainsFunc(c.Features, func(e Feature) bool { return e.Name == name }) {
			return true, nil
		}
		return f.Default, nil
	}
	return false, fmt.Errorf("unexpected feature name %q", name)
}

// Output returns the output configuration with defaults applied.
func (c Config) Output() OutputConfig {
	o := OutputConfig{Target: c.Target, Package: c.Package, Header: c.Header}
	if o.Package == "" && o.Target != "" {
		o.Package = filepath.Base(o.Target)
	}
	if o.Header == "" {
		o.Header = DefaultHeader
	}
	return o
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
