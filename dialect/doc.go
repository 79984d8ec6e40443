// Package dialect maps database dialect names to parameter placeholder
// prefixes.
//
// # Supported Dialects
//
// The following prefixes are registered by default:
//
//	dialect.Postgres  = "postgres"   $1, $2, ...
//	dialect.SQLServer = "sqlserver"  @P1, @P2, ...
//	dialect.SQLite    = "sqlite"     ?1, ?2, ...
//	dialect.Oracle    = "oracle"     :1, :2, ...
//
// MySQL only supports positional "?" placeholders, so it has no prefix. The
// MySQL constant is still used by the introspection driver in dialect/sql.
//
// # Usage
//
//	prefix, err := dialect.Prefix("Postgres")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.CreateSQL("persons", prefix)
//
// Additional dialects can be registered at init time:
//
//	dialect.Register("db2", "?")
//
// # Sub-packages
//
//   - dialect/sql: database connections and table introspection
package dialect
