package sql

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/syssam/sqlcrud/dialect"
)

// validIdentifierRe validates SQL identifiers (alphanumeric, underscores, dots for schema.name)
var validIdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

// isValidIdentifier checks if the string is a valid SQL identifier.
func isValidIdentifier(s string) bool {
	return s != "" && len(s) <= 128 && validIdentifierRe.MatchString(s)
}

// driverNames maps dialect names to the database/sql driver names registered
// by lib/pq, go-sql-driver/mysql and modernc.org/sqlite.
var driverNames = map[string]string{
	dialect.Postgres: "postgres",
	dialect.MySQL:    "mysql",
	dialect.SQLite:   "sqlite",
}

// Driver is a database connection used to read table definitions.
type Driver struct {
	db      *sql.DB
	dialect string
}

// Open opens a connection for one of the supported dialects. The driver
// package must be imported by the caller.
func Open(dialectName, source string) (*Driver, error) {
	name, ok := driverNames[dialectName]
	if !ok {
		return nil, fmt.Errorf("dialect/sql: unsupported dialect %q; use postgres, mysql, or sqlite", dialectName)
	}
	db, err := sql.Open(name, source)
	if err != nil {
		return nil, err
	}
	return OpenDB(dialectName, db), nil
}

// OpenDB wraps the given database/sql.DB with a Driver.
func OpenDB(dialectName string, db *sql.DB) *Driver {
	return &Driver{db: db, dialect: dialectName}
}

// DB returns the underlying *sql.DB instance.
func (d *Driver) DB() *sql.DB {
	return d.db
}

// Dialect returns the dialect name of the connection.
func (d *Driver) Dialect() string {
	// sqlite3, postgresql and similar driver aliases.
	for _, name := range []string{dialect.MySQL, dialect.SQLite, dialect.Postgres} {
		if strings.HasPrefix(d.dialect, name) {
			return name
		}
	}
	return d.dialect
}

// Close closes the underlying connection.
func (d *Driver) Close() error { return d.db.Close() }
