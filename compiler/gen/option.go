package gen

import (
	"errors"
	"go/token"

	"go.uber.org/zap"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the Go package name of the generated files.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		if !token.IsIdentifier(pkg) {
			return NewConfigError("Package", pkg, "package name is not a valid Go identifier")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithFeatures enables specific features.
// Features control optional code generation capabilities.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithFeatureNames enables features by name.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, err := FeatureByName(name)
			if err != nil {
				return err
			}
			c.Features = append(c.Features, f)
		}
		return nil
	}
}

// WithoutFeatures disables features that are on by default.
func WithoutFeatures(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			if _, err := FeatureByName(name); err != nil {
				return err
			}
			c.Disabled = append(c.Disabled, name)
		}
		return nil
	}
}

// WithHooks adds hooks to the generation pipeline.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// WithTag sets the struct tag key used to load the schemas.
func WithTag(tag string) Option {
	return func(c *Config) error {
		if tag == "" {
			return NewConfigError("Tag", nil, "tag cannot be empty")
		}
		c.Tag = tag
		return nil
	}
}

// WithBuildFlags sets custom build flags for package loading.
// For example: WithBuildFlags("-tags", "dev").
func WithBuildFlags(flags ...string) Option {
	return func(c *Config) error {
		c.BuildFlags = append(c.BuildFlags, flags...)
		return nil
	}
}

// WithNames restricts generation to the named types.
func WithNames(names ...string) Option {
	return func(c *Config) error {
		c.Names = append(c.Names, names...)
		return nil
	}
}

// WithGenerator sets a custom code generator.
func WithGenerator(g Generator) Option {
	return func(c *Config) error {
		if g == nil {
			return NewConfigError("Generator", nil, "generator cannot be nil")
		}
		c.Generator = g
		return nil
	}
}

// WithDialect sets the dialect generator constructor.
func WithDialect(fn DialectFunc) Option {
	return func(c *Config) error {
		if fn == nil {
			return NewConfigError("Dialect", nil, "dialect cannot be nil")
		}
		c.Dialect = fn
		return nil
	}
}

// WithLogger sets the logger of the generator.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithWorkers bounds the number of files generated in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
