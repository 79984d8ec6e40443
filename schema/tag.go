package schema

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// DefaultTag is the struct tag key read by default.
const DefaultTag = "sql"

// Tag is a parsed `sql:"[column][,id]"` struct tag.
type Tag struct {
	Column string
	ID     bool
	Skip   bool
}

// ParseTag parses the value of a struct tag. Unknown options are ignored.
func ParseTag(tag string) Tag {
	tag = strings.TrimSpace(tag)
	if tag == "-" {
		return Tag{Skip: true}
	}
	name, opts, _ := strings.Cut(tag, ",")
	t := Tag{Column: strings.TrimSpace(name)}
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if strings.TrimSpace(opt) == "id" {
			t.ID = true
		}
	}
	return t
}

// FieldTag resolves the column of a struct field from its tags. The column is
// named by the key tag, then by a `db` tag, and defaults to the snake_case
// form of the field name. Skip is set when either tag is "-".
func FieldTag(goName string, st reflect.StructTag, key string) Tag {
	tag := ParseTag(st.Get(key))
	if tag.Skip {
		return tag
	}
	if tag.Column == "" {
		db, _, _ := strings.Cut(st.Get("db"), ",")
		tag.Column = strings.TrimSpace(db)
	}
	switch tag.Column {
	case "-":
		return Tag{Skip: true}
	case "":
		tag.Column = strcase.ToSnake(goName)
	}
	return tag
}

// Flatten reports if an embedded field is flattened into its parent: its key
// tag neither names a column nor skips it.
func Flatten(st reflect.StructTag, key string) bool {
	tag := ParseTag(st.Get(key))
	return !tag.Skip && tag.Column == ""
}
