package load

import (
	"context"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/syssam/sqlcrud/dialect/sql"
	"github.com/syssam/sqlcrud/schema"
)

// Introspect builds the schema of an existing table. The primary key column
// becomes the identifier; tables with a composite primary key get no
// identifier. When name is empty, the type name is the singular camel-case
// form of the table name.
func Introspect(ctx context.Context, drv *sql.Driver, table, name string) (*schema.Schema, error) {
	columns, err := drv.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	if i := strings.LastIndexByte(table, '.'); i >= 0 {
		table = table[i+1:]
	}
	if name == "" {
		name = schema.GoName(inflect.Singularize(table))
	}
	s := &schema.Schema{Name: name, Table: table}
	pks := 0
	for _, c := range columns {
		if c.PrimaryKey {
			pks++
		}
	}
	for _, c := range columns {
		s.Fields = append(s.Fields, &schema.Field{
			Name:   c.Name,
			GoName: schema.GoName(c.Name),
			Type:   c.Type,
			ID:     c.PrimaryKey && pks == 1,
		})
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
