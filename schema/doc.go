// Package schema describes the record shapes sqlcrud generates statements for.
//
// A Schema is an ordered list of columns with at most one identifier column.
// Schemas are obtained from:
//
//   - Go struct types, by reflection over their struct tags (Of, FromType)
//   - YAML descriptor files (Decode, ReadFile)
//   - source code and live databases (see package compiler/load)
//
// # Struct Tags
//
// The column of a struct field is taken from the `sql` tag:
//
//	type Person struct {
//	    ID        int    `sql:",id"`         // column "id", the identifier
//	    Name      string                     // column "name"
//	    CreatedAt string `sql:"created"`     // column "created"
//	    Secret    string `sql:"-"`           // skipped
//	}
//
// When no `sql` tag names a column, a `db` tag is honored, and otherwise the
// snake_case form of the field name is used. Unexported fields are skipped and
// embedded structs are flattened in declaration order.
//
// # YAML
//
// A descriptor file holds a list of schemas:
//
//	schemas:
//	  - name: Person
//	    table: persons
//	    fields:
//	      - name: id
//	        id: true
//	      - name: name
package schema
