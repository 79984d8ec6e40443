// Package sql reads table definitions from live databases.
//
// It backs the `sqlcrud introspect` command, which turns an existing table
// into a schema descriptor:
//
//	import _ "github.com/lib/pq"
//
//	drv, err := sql.Open(dialect.Postgres, "postgres://...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
//
//	columns, err := drv.Columns(ctx, "public.persons")
//
// # Dialect Support
//
// Columns are read from information_schema for PostgreSQL and MySQL, and from
// PRAGMA table_info for SQLite. Columns are returned in ordinal order, which
// becomes the declaration order of the descriptor.
package sql
