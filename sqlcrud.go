// Package sqlcrud generates SQL statement text for Go record types.
//
// A record type is described by an ordered list of columns and an optional
// identifier column. For every described type sqlcrud produces four
// string-building operations, each parameterized at call time by a table
// name and a placeholder prefix:
//
//	p.CreateSQL("persons", "$")  // INSERT INTO persons (id, name) VALUES ($1,$2);
//	p.UpdateSQL("persons", "$")  // UPDATE persons SET (id = $1, name = $2);
//	p.DeleteSQL("persons", "$")  // DELETE FROM persons WHERE id = $1;
//	p.GetByIDSQL("persons", "$") // SELECT id, name FROM persons WHERE id = $1;
//
// The operations are either generated as Go methods by the sqlcrud command
// (see cmd/sqlcrud) or built at runtime by package statement.
package sqlcrud

// Writer is implemented by types that can produce INSERT and UPDATE text.
// Types without an identifier column implement only Writer.
type Writer interface {
	CreateSQL(table, prefix string) string
	UpdateSQL(table, prefix string) string
}

// Statements is implemented by types with exactly one identifier column.
type Statements interface {
	Writer
	DeleteSQL(table, prefix string) string
	GetByIDSQL(table, prefix string) string
}
