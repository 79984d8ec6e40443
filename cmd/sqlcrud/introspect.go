package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// Database drivers for introspection.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/syssam/sqlcrud/compiler/load"
	"github.com/syssam/sqlcrud/dialect/sql"
	"github.com/syssam/sqlcrud/schema"
)

var (
	inspectDriver string
	inspectDSN    string
	inspectTables []string
	inspectName   string
)

var introspectCmd = &cobra.Command{
	Use:   "introspect",
	Short: "Write a descriptor file from existing tables",
	Long: `Introspect reads the columns of existing tables and writes a YAML descriptor
to standard output. The primary key column becomes the identifier.`,
	Args: cobra.NoArgs,
	RunE: runIntrospect,
}

func runIntrospect(cmd *cobra.Command, args []string) error {
	if inspectName != "" && len(inspectTables) > 1 {
		return fmt.Errorf("--name requires a single --table")
	}
	drv, err := sql.Open(inspectDriver, inspectDSN)
	if err != nil {
		return err
	}
	defer drv.Close()

	ctx := commandContext(cmd)
	schemas := make([]*schema.Schema, 0, len(inspectTables))
	for _, table := range inspectTables {
		s, err := load.Introspect(ctx, drv, table, inspectName)
		if err != nil {
			return err
		}
		log().Debug("table read", zap.String("table", table), zap.Int("columns", len(s.Fields)))
		schemas = append(schemas, s)
	}
	return schema.Encode(cmd.OutOrStdout(), schemas...)
}
