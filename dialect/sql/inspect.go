package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/sqlcrud/dialect"
)

// ErrTableNotFound is returned when a table has no columns.
var ErrTableNotFound = errors.New("dialect/sql: table not found")

// Column describes a table column.
type Column struct {
	Name       string
	Type       string
	Nullable   bool
	PrimaryKey bool
}

const (
	postgresColumnsQuery = `SELECT c.column_name, c.data_type, c.is_nullable,
	EXISTS (
		SELECT 1 FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY'
			AND tc.table_schema = c.table_schema
			AND tc.table_name = c.table_name
			AND kcu.column_name = c.column_name
	) AS is_pk
FROM information_schema.columns c
WHERE c.table_schema = COALESCE(NULLIF($1, ''), current_schema()) AND c.table_name = $2
ORDER BY c.ordinal_position`

	mysqlColumnsQuery = `SELECT column_name, column_type, is_nullable, column_key
FROM information_schema.columns
WHERE table_schema = COALESCE(NULLIF(?, ''), DATABASE()) AND table_name = ?
ORDER BY ordinal_position`
)

// Columns returns the columns of table in ordinal order. The table may be
// qualified with a schema (postgres) or database (mysql) name.
func (d *Driver) Columns(ctx context.Context, table string) ([]*Column, error) {
	if !isValidIdentifier(table) {
		return nil, fmt.Errorf("dialect/sql: invalid table name %q", table)
	}
	var (
		columns []*Column
		err     error
	)
	switch d.Dialect() {
	case dialect.Postgres:
		columns, err = d.postgresColumns(ctx, table)
	case dialect.MySQL:
		columns, err = d.mysqlColumns(ctx, table)
	case dialect.SQLite:
		columns, err = d.sqliteColumns(ctx, table)
	default:
		return nil, fmt.Errorf("dialect/sql: introspection is not supported for %q", d.dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: read columns of %s: %w", table, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	return columns, nil
}

func (d *Driver) postgresColumns(ctx context.Context, table string) ([]*Column, error) {
	schemaName, name := splitQualified(table)
	rows, err := d.db.QueryContext(ctx, postgresColumnsQuery, schemaName, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var columns []*Column
	for rows.Next() {
		var (
			c        Column
			nullable string
		)
		if err := rows.Scan(&c.Name, &c.Type, &nullable, &c.PrimaryKey); err != nil {
			return nil, err
		}
		c.Nullable = nullable == "YES"
		columns = append(columns, &c)
	}
	return columns, rows.Err()
}

func (d *Driver) mysqlColumns(ctx context.Context, table string) ([]*Column, error) {
	schemaName, name := splitQualified(table)
	rows, err := d.db.QueryContext(ctx, mysqlColumnsQuery, schemaName, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var columns []*Column
	for rows.Next() {
		var (
			c        Column
			nullable string
			key      sql.NullString
		)
		if err := rows.Scan(&c.Name, &c.Type, &nullable, &key); err != nil {
			return nil, err
		}
		c.Nullable = nullable == "YES"
		c.PrimaryKey = key.String == "PRI"
		columns = append(columns, &c)
	}
	return columns, rows.Err()
}

func (d *Driver) sqliteColumns(ctx context.Context, table string) ([]*Column, error) {
	if strings.Contains(table, ".") {
		return nil, fmt.Errorf("qualified table names are not supported for %s", dialect.SQLite)
	}
	// PRAGMA does not accept bind parameters; the name was validated above.
	rows, err := d.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var columns []*Column
	for rows.Next() {
		var (
			cid     int
			c       Column
			notnull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &c.Name, &c.Type, &notnull, &dflt, &pk); err != nil {
			return nil, err
		}
		c.Nullable = notnull == 0 && pk == 0
		c.PrimaryKey = pk > 0
		columns = append(columns, &c)
	}
	return columns, rows.Err()
}

// splitQualified splits "schema.table" into its parts.
func splitQualified(table string) (string, string) {
	if i := strings.LastIndexByte(table, '.'); i >= 0 {
		return table[:i], table[i+1:]
	}
	return "", table
}
