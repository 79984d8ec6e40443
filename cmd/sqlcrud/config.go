package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/syssam/sqlcrud/compiler"
	"github.com/syssam/sqlcrud/compiler/gen"
)

// ConfigFile is the default name of the generate configuration file.
const ConfigFile = "sqlcrud.yaml"

// fileConfig is the layout of a sqlcrud.yaml file. Command line flags take
// precedence over its values. Files are always generated into the package
// directory since methods can only be declared next to their types.
type fileConfig struct {
	Header    string   `yaml:"header"`
	Tag       string   `yaml:"tag"`
	Features  []string `yaml:"features"`
	Disabled  []string `yaml:"disabled"`
	Types     []string `yaml:"types"`
	BuildTags []string `yaml:"build_tags"`
}

func decodeConfig(r io.Reader) (*fileConfig, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &fc, nil
}

// readConfig reads the configuration file at path. When path is empty, the
// sqlcrud.yaml file of dir is read if it exists.
func readConfig(path, dir string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, ConfigFile)
	}
	buf, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
		return &fileConfig{}, nil
	case err != nil:
		return nil, err
	}
	fc, err := decodeConfig(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// merge overrides the file values with the non-empty flag values.
func (fc *fileConfig) merge(flags *fileConfig) {
	if flags.Header != "" {
		fc.Header = flags.Header
	}
	if flags.Tag != "" {
		fc.Tag = flags.Tag
	}
	fc.Features = append(fc.Features, flags.Features...)
	fc.Disabled = append(fc.Disabled, flags.Disabled...)
	if len(flags.Types) > 0 {
		fc.Types = flags.Types
	}
	fc.BuildTags = append(fc.BuildTags, flags.BuildTags...)
}

// options returns the generator options of the configuration.
func (fc *fileConfig) options() []gen.Option {
	var opts []gen.Option
	if fc.Header != "" {
		opts = append(opts, gen.WithHeader(fc.Header))
	}
	if fc.Tag != "" {
		opts = append(opts, gen.WithTag(fc.Tag))
	}
	if len(fc.Features) > 0 {
		opts = append(opts, gen.WithFeatureNames(fc.Features...))
	}
	if len(fc.Disabled) > 0 {
		opts = append(opts, gen.WithoutFeatures(fc.Disabled...))
	}
	if len(fc.Types) > 0 {
		opts = append(opts, gen.WithNames(fc.Types...))
	}
	return opts
}

// compilerOptions returns the options applied when loading the package.
func (fc *fileConfig) compilerOptions() []compiler.Option {
	if len(fc.BuildTags) == 0 {
		return nil
	}
	return []compiler.Option{compiler.BuildTags(fc.BuildTags...)}
}
