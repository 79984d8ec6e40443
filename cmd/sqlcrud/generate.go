package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/sqlcrud/compiler"
	"github.com/syssam/sqlcrud/compiler/gen"
	"github.com/syssam/sqlcrud/internal/watch"
)

var (
	genHeader     string
	genTag        string
	genFeatures   []string
	genDisabled   []string
	genTypes      []string
	genBuildTags  []string
	genConfigFile string
	genWatch      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate statement methods for the annotated types of a package",
	Long: `Generate writes one <type>_sqlcrud.go file per //sqlcrud:derive type of the
package at path (default: the current directory). Settings are read from the
sqlcrud.yaml file of the package directory, if present; flags take precedence.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	dir := path
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		dir = "."
	}
	fc, err := readConfig(genConfigFile, dir)
	if err != nil {
		return err
	}
	fc.merge(&fileConfig{
		Header:    genHeader,
		Tag:       genTag,
		Features:  genFeatures,
		Disabled:  genDisabled,
		Types:     genTypes,
		BuildTags: genBuildTags,
	})

	if genWatch && dir != path {
		return fmt.Errorf("--watch requires a directory path, got %q", path)
	}

	ctx := commandContext(cmd)
	if err := generate(ctx, path, fc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", path)
	if !genWatch {
		return nil
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	w := watch.New(dir, func(ctx context.Context) error {
		return generate(ctx, path, fc)
	}, watch.WithLogger(log()))
	return w.Run(ctx)
}

// generate runs one code generation. The configuration is rebuilt on every
// call since loading the package fills in its defaults.
func generate(ctx context.Context, path string, fc *fileConfig) error {
	opts := append(fc.options(), gen.WithLogger(log()))
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	log().Debug("generating", zap.String("path", path), zap.Strings("types", fc.Types))
	return compiler.GenerateContext(ctx, path, cfg, fc.compilerOptions()...)
}
