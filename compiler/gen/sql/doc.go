// Package sql implements the SQL statement code generator.
//
// For each type of the graph, the generator writes {type}_sqlcrud.go next to
// the type declaration:
//
//	// CreateSQL returns the INSERT statement for Person.
//	func (Person) CreateSQL(table, prefix string) string {
//		return "INSERT INTO " + table + " (id, name) VALUES (" + prefix + "1," + prefix + "2);"
//	}
//
// UpdateSQL is generated for every type. DeleteSQL and GetByIDSQL are
// generated for types with an identifier field. The concatenation is built
// from the same statement.Template used by the runtime builder, so the
// generated methods and statement.Builder return identical text.
//
// Optional features:
//
//   - static: package-level PersonCreateSQL functions
//   - table: const PersonTable = "people"
//   - columns: var PersonColumns = []string{"id", "name"}
//   - assert: sqlcrud_assert.go with interface assertions (on by default)
package sql
