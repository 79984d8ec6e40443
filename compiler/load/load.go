// Package load loads schema descriptors from Go packages and databases.
package load

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/syssam/sqlcrud"
	"github.com/syssam/sqlcrud/schema"
)

// Directive marks a struct declaration for generation.
//
//	//sqlcrud:derive
//	type Person struct { ... }
//
// The directive accepts an optional default table name:
//
//	//sqlcrud:derive table=persons
const Directive = "sqlcrud:derive"

type (
	// Config holds the configuration for loading a package.
	Config struct {
		// Path is the package path or directory to load.
		Path string
		// Names filters the loaded types. All annotated types are loaded
		// when empty.
		Names []string
		// BuildFlags holds a list of custom build flags to use when loading
		// the package.
		BuildFlags []string
		// Tag is the struct tag key. Defaults to schema.DefaultTag.
		Tag string
	}

	// SchemaSpec holds the loaded schemas and the package they were
	// declared in.
	SchemaSpec struct {
		// Schemas in declaration order.
		Schemas []*schema.Schema
		// PkgName is the package name.
		PkgName string
		// PkgPath is the package import path.
		PkgPath string
		// Dir is the package directory.
		Dir string
	}
)

// Load loads the annotated struct declarations of the configured package.
func (c *Config) Load() (*SchemaSpec, error) {
	if c.Path == "" {
		return nil, errors.New("sqlcrud/load: missing package path")
	}
	dir, pattern := "", c.Path
	if info, err := os.Stat(c.Path); err == nil && info.IsDir() {
		dir, pattern = c.Path, "."
	}
	// NeedDeps type-checks the dependencies from source. Without it the
	// package is compiled for its export data, and a stale generated file
	// fails the whole load instead of reporting type errors.
	pkgs, err := packages.Load(&packages.Config{
		Dir:        dir,
		BuildFlags: c.BuildFlags,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedImports |
			packages.NeedDeps | packages.NeedTypes | packages.NeedTypesInfo,
		ParseFile: parseFile,
	}, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading package: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no package found for %q", c.Path)
	}
	pkg := pkgs[0]
	if err := packageError(pkg); err != nil {
		return nil, err
	}
	spec := &SchemaSpec{PkgName: pkg.Name, PkgPath: pkg.PkgPath}
	if len(pkg.GoFiles) > 0 {
		spec.Dir = filepath.Dir(pkg.GoFiles[0])
	}
	tag := c.Tag
	if tag == "" {
		tag = schema.DefaultTag
	}
	for _, f := range pkg.Syntax {
		if ast.IsGenerated(f) {
			continue
		}
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, sp := range gd.Specs {
				ts := sp.(*ast.TypeSpec)
				args, ok := directive(ts.Doc)
				if !ok && len(gd.Specs) == 1 {
					args, ok = directive(gd.Doc)
				}
				if !ok || (len(c.Names) > 0 && !slices.Contains(c.Names, ts.Name.Name)) {
					continue
				}
				s, err := c.schema(pkg, ts, tag)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", pkg.Fset.Position(ts.Pos()), err)
				}
				s.Table = args["table"]
				spec.Schemas = append(spec.Schemas, s)
			}
		}
	}
	for _, name := range c.Names {
		if !slices.ContainsFunc(spec.Schemas, func(s *schema.Schema) bool { return s.Name == name }) {
			return nil, fmt.Errorf("type %q not found or missing the //%s directive in %s", name, Directive, pkg.PkgPath)
		}
	}
	return spec, nil
}

// schema builds the schema of an annotated type declaration.
func (c *Config) schema(pkg *packages.Package, ts *ast.TypeSpec, tag string) (*schema.Schema, error) {
	if ts.TypeParams != nil && ts.TypeParams.NumFields() > 0 {
		return nil, fmt.Errorf("%w: %s is generic", sqlcrud.ErrNotStruct, ts.Name.Name)
	}
	obj := pkg.TypesInfo.Defs[ts.Name]
	if obj == nil {
		return nil, fmt.Errorf("missing type information for %s", ts.Name.Name)
	}
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s", sqlcrud.ErrNotStruct, ts.Name.Name, obj.Type().Underlying())
	}
	s := &schema.Schema{Name: ts.Name.Name}
	qf := types.RelativeTo(pkg.Types)
	if err := addFields(s, st, tag, qf); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// addFields appends the columns of st in declaration order, following the
// same rules as schema.FromType.
func addFields(s *schema.Schema, st *types.Struct, key string, qf types.Qualifier) error {
	for i := range st.NumFields() {
		v := st.Field(i)
		stag := reflect.StructTag(st.Tag(i))
		if v.Embedded() && schema.Flatten(stag, key) {
			switch t := v.Type().Underlying().(type) {
			case *types.Pointer:
				return sqlcrud.NewFieldError(s.Label(), v.Name(), fmt.Errorf("%w: pointer embedding of %s", sqlcrud.ErrNotStruct, types.TypeString(v.Type(), qf)))
			case *types.Struct:
				if err := addFields(s, t, key, qf); err != nil {
					return err
				}
				continue
			}
		}
		if !v.Exported() {
			continue
		}
		if v.Type() == types.Typ[types.Invalid] {
			return sqlcrud.NewFieldError(s.Label(), v.Name(), errors.New("invalid type"))
		}
		tag := schema.FieldTag(v.Name(), stag, key)
		if tag.Skip {
			continue
		}
		s.Fields = append(s.Fields, &schema.Field{
			Name:   tag.Column,
			GoName: v.Name(),
			Type:   types.TypeString(v.Type(), qf),
			ID:     tag.ID,
		})
	}
	return nil
}

// directive returns the arguments of the generation directive in doc.
func directive(doc *ast.CommentGroup) (map[string]string, bool) {
	if doc == nil {
		return nil, false
	}
	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, "//"+Directive)
		if !ok || (text != "" && text[0] != ' ' && text[0] != '\t') {
			continue
		}
		args := make(map[string]string)
		for _, kv := range strings.Fields(text) {
			k, v, _ := strings.Cut(kv, "=")
			args[k] = v
		}
		return args, true
	}
	return nil, false
}

// parseFile parses a Go file of the loaded packages. The declarations of
// files written by the generator are dropped: they may refer to types that
// were renamed or removed since the last run.
func parseFile(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	f, err := parser.ParseFile(fset, filename, src, parser.AllErrors|parser.ParseComments)
	if err != nil || !isOutput(filepath.Base(filename)) || !ast.IsGenerated(f) {
		return f, err
	}
	return &ast.File{
		Package:   f.Package,
		Name:      f.Name,
		FileStart: f.FileStart,
		FileEnd:   f.FileEnd,
	}, nil
}

// isOutput reports whether name is a file name used by the generator.
func isOutput(name string) bool {
	return name == "sqlcrud_assert.go" || strings.HasSuffix(name, "_sqlcrud.go")
}

// packageError returns the first package error that is not a type error.
// Type errors are tolerated because generated files and code calling the
// generated methods may be stale until generation completes. Fields with
// invalid types are rejected by addFields.
func packageError(pkg *packages.Package) error {
	for _, e := range pkg.Errors {
		if e.Kind != packages.TypeError {
			return e
		}
	}
	return nil
}
