// Command sqlcrud generates the SQL statement methods of annotated Go types.
//
//	sqlcrud generate ./model
//	sqlcrud print --dialect postgres ./model
//	sqlcrud introspect --driver sqlite --dsn app.db --table persons
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sqlcrud",
	Short: "Generate SQL statement methods for Go types",
	Long: `sqlcrud derives INSERT, UPDATE, DELETE and SELECT-by-id statement text
from the fields of Go structs annotated with //sqlcrud:derive.

Each statement method takes the table name and the placeholder prefix of the
target database, so a single type serves postgres ($), sqlserver (@P),
sqlite (?) and oracle (:).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	generateCmd.Flags().StringVar(&genHeader, "header", "", "Header comment of the generated files")
	generateCmd.Flags().StringVar(&genTag, "tag", "", "Struct tag key holding column options (default: sql)")
	generateCmd.Flags().StringSliceVar(&genFeatures, "feature", nil, "Enable an optional feature (static, table, assert, columns)")
	generateCmd.Flags().StringSliceVar(&genDisabled, "disable", nil, "Disable a feature, including default ones")
	generateCmd.Flags().StringSliceVar(&genTypes, "type", nil, "Generate only the named types")
	generateCmd.Flags().StringSliceVar(&genBuildTags, "build-tags", nil, "Build tags used when loading the package")
	generateCmd.Flags().StringVarP(&genConfigFile, "config", "c", "", "Path of a sqlcrud.yaml file (default: sqlcrud.yaml in the package directory, if present)")
	generateCmd.Flags().BoolVarP(&genWatch, "watch", "w", false, "Regenerate when the package sources change")

	printCmd.Flags().StringVar(&printTable, "table", "", "Table name (default: the type's table)")
	printCmd.Flags().StringVar(&printPrefix, "prefix", "$", "Placeholder prefix")
	printCmd.Flags().StringVarP(&printDialect, "dialect", "d", "", "Dialect whose placeholder prefix to use; overrides --prefix")
	printCmd.Flags().StringVar(&printYAML, "yaml", "", "Read the types from a descriptor file instead of a Go package")
	printCmd.Flags().StringSliceVar(&printTypes, "type", nil, "Print only the named types")

	introspectCmd.Flags().StringVar(&inspectDriver, "driver", "", "Database dialect (postgres, mysql, sqlite) (required)")
	introspectCmd.Flags().StringVar(&inspectDSN, "dsn", "", "Data source name (required)")
	introspectCmd.Flags().StringSliceVar(&inspectTables, "table", nil, "Table to read (required, repeatable)")
	introspectCmd.Flags().StringVar(&inspectName, "name", "", "Type name of a single table (default: singular camel-case table name)")
	_ = introspectCmd.MarkFlagRequired("driver")
	_ = introspectCmd.MarkFlagRequired("dsn")
	_ = introspectCmd.MarkFlagRequired("table")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(introspectCmd)
	rootCmd.AddCommand(dialectsCmd)
}

// commandContext returns the context of cmd, or a background context for
// commands that were not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// log returns the command logger, or a no-op logger when the root hooks
// did not run.
func log() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
