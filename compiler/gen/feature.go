package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AssertFile is the name of the graph-level file holding the compile-time
// interface assertions.
const AssertFile = "sqlcrud_assert.go"

var (
	// FeatureStatic provides a feature-flag for package-level statement
	// functions. With the flag on, Person gets PersonCreateSQL, PersonUpdateSQL
	// and so on, next to the methods.
	FeatureStatic = Feature{
		Name:        "static",
		Stage:       Stable,
		Default:     false,
		Description: "Generates package-level {Type}CreateSQL functions in addition to the methods",
	}

	// FeatureTable provides a feature-flag for the default table constant.
	FeatureTable = Feature{
		Name:        "table",
		Stage:       Stable,
		Default:     false,
		Description: "Generates a {Type}Table constant holding the default table name",
	}

	// FeatureAssert provides a feature-flag for compile-time checks that the
	// generated types implement sqlcrud.Writer or sqlcrud.Statements.
	FeatureAssert = Feature{
		Name:        "assert",
		Stage:       Stable,
		Default:     true,
		Description: "Generates sqlcrud_assert.go with compile-time interface assertions",
		cleanup: func(c *Config) error {
			return remove(c.Target, AssertFile)
		},
	}

	// FeatureColumns provides a feature-flag for the ordered column list.
	FeatureColumns = Feature{
		Name:        "columns",
		Stage:       Beta,
		Default:     false,
		Description: "Generates a {Type}Columns variable holding the columns in declaration order",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureStatic,
		FeatureTable,
		FeatureAssert,
		FeatureColumns,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and may change or go away.
	Experimental

	// Alpha features are usable but their generated API may still change.
	Alpha

	// Beta features are documented and not expected to break.
	Beta

	// Stable features are Beta features that have been in use for a while.
	Stable
)

// String returns the stage name.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return fmt.Sprintf("FeatureStage(%d)", int(s))
	}
}

// A Feature of the sqlcrud codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// cleanup used to cleanup all changes when a feature-flag is removed.
	// e.g. delete files from previous codegen runs.
	cleanup func(*Config) error
}

// FeatureByName returns the feature with the given name.
func FeatureByName(name string) (Feature, error) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, nil
		}
	}
	names := make([]string, len(AllFeatures))
	for i, f := range AllFeatures {
		names[i] = f.Name
	}
	return Feature{}, NewConfigError("Features", name, "unknown feature, expected one of: "+strings.Join(names, ", "))
}

// remove file (if exists) and its dir if it's empty.
func remove(dir, file string) error {
	if err := os.Remove(filepath.Join(dir, file)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	infos, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return os.Remove(dir)
	}
	return nil
}
