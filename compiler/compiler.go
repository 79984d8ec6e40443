// Package compiler provides the entry points for loading annotated Go types
// and generating their statement methods.
//
//	cfg, err := gen.NewConfig(gen.WithFeatures(gen.FeatureStatic))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := compiler.Generate("./model", cfg); err != nil {
//		log.Fatal(err)
//	}
package compiler

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/syssam/sqlcrud/compiler/gen"
	"github.com/syssam/sqlcrud/compiler/gen/sql"
	"github.com/syssam/sqlcrud/compiler/load"
)

type (
	// Option allows for managing codegen configuration using functional options.
	Option func(*gen.Config) error

	// Extension describes a codegen extension: hooks wrapping the
	// generator and options applied to the configuration.
	Extension interface {
		// Hooks holds an optional list of Hooks to apply
		// on the graph before/after the code-generation.
		Hooks() []gen.Hook

		// Options holds the compiler options to apply on the configuration.
		Options() []Option
	}

	// DefaultExtension is the default implementation of an Extension.
	// Embed it in custom extensions to only override the needed methods.
	DefaultExtension struct{}
)

// Hooks returns no hooks.
func (DefaultExtension) Hooks() []gen.Hook { return nil }

// Options returns no options.
func (DefaultExtension) Options() []Option { return nil }

var _ Extension = (*DefaultExtension)(nil)

// Extensions applies the given extensions on the configuration.
func Extensions(extensions ...Extension) Option {
	return func(cfg *gen.Config) error {
		for _, ex := range extensions {
			cfg.Hooks = append(cfg.Hooks, ex.Hooks()...)
			for _, opt := range ex.Options() {
				if err := opt(cfg); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// FeatureNames enables the features with the given names.
func FeatureNames(names ...string) Option {
	return Option(gen.WithFeatureNames(names...))
}

// BuildTags appends the given build tags to the build flags of the loader.
func BuildTags(tags ...string) Option {
	return func(cfg *gen.Config) error {
		if len(tags) > 0 {
			cfg.BuildFlags = append(cfg.BuildFlags, "-tags", strings.Join(tags, ","))
		}
		return nil
	}
}

// LoadGraph loads the //sqlcrud:derive types of the package at path and
// returns the graph to generate. Target and Package default to the
// directory and name of the loaded package. The generated methods must be
// declared next to their types, so a Target or Package other than the
// loaded one is rejected.
func LoadGraph(path string, cfg *gen.Config) (*gen.Graph, error) {
	spec, err := (&load.Config{
		Path:       path,
		Names:      cfg.Names,
		BuildFlags: cfg.BuildFlags,
		Tag:        cfg.Tag,
	}).Load()
	if err != nil {
		return nil, fmt.Errorf("sqlcrud/compiler: load package: %w", err)
	}
	switch {
	case cfg.Target == "":
		cfg.Target = spec.Dir
	case !samePath(cfg.Target, spec.Dir):
		return nil, gen.NewConfigError("Target", cfg.Target, "must be the directory of package "+spec.PkgPath+" ("+spec.Dir+")")
	}
	switch {
	case cfg.Package == "":
		cfg.Package = spec.PkgName
	case cfg.Package != spec.PkgName:
		return nil, gen.NewConfigError("Package", cfg.Package, "must be the name of the loaded package "+spec.PkgName)
	}
	return gen.NewGraph(cfg, spec.Schemas...)
}

// samePath reports whether a and b name the same directory.
func samePath(a, b string) bool {
	return resolve(a) == resolve(b)
}

func resolve(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return filepath.Clean(path)
}

// Generate runs the codegen on the package at the given path.
func Generate(path string, cfg *gen.Config, options ...Option) error {
	return GenerateContext(context.Background(), path, cfg, options...)
}

// GenerateContext is like Generate with a context bounding the file writes.
func GenerateContext(ctx context.Context, path string, cfg *gen.Config, options ...Option) error {
	if cfg == nil {
		return gen.NewConfigError("Config", nil, "config cannot be nil")
	}
	for _, opt := range options {
		if err := opt(cfg); err != nil {
			return err
		}
	}
	if cfg.Dialect == nil {
		cfg.Dialect = sql.New
	}
	graph, err := LoadGraph(path, cfg)
	if err != nil {
		return err
	}
	if cfg.Logger != nil {
		cfg.Logger.Debug("graph loaded", zap.String("path", path), zap.Int("types", len(graph.Nodes)), zap.String("target", cfg.Target))
	}
	return graph.GenContext(ctx)
}
