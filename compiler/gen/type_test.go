package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlcrud"
	"github.com/syssam/sqlcrud/schema"
	"github.com/syssam/sqlcrud/statement"
)

func personSchema() *schema.Schema {
	return &schema.Schema{
		Name:  "Person",
		Table: "persons",
		Fields: []*schema.Field{
			{Name: "id", GoName: "ID", Type: "int32", ID: true},
			{Name: "name", GoName: "Name", Type: "string"},
		},
	}
}

func TestType(t *testing.T) {
	typ, err := NewType(&Config{}, personSchema())
	require.NoError(t, err)

	assert.Equal(t, "Person", typ.Name)
	assert.Equal(t, "persons", typ.Table)
	require.NotNil(t, typ.ID)
	assert.Equal(t, "id", typ.ID.Name)
	assert.True(t, typ.HasID())
	assert.Equal(t, []string{"id", "name"}, typ.Columns())
	assert.Equal(t, []statement.Op{statement.Create, statement.Update, statement.Delete, statement.GetByID}, typ.Ops())
	assert.Equal(t, 2, typ.Fields[1].Position)

	tmpl, ok := typ.Template(statement.Delete)
	require.True(t, ok)
	assert.Equal(t, "DELETE FROM persons WHERE id = $1;", tmpl.Render("persons", "$"))
	assert.Equal(t, "Person", typ.Schema().Name)
}

func TestType_NoID(t *testing.T) {
	typ, err := NewType(&Config{}, &schema.Schema{
		Name:   "Note",
		Fields: []*schema.Field{{Name: "body"}},
	})
	require.NoError(t, err)
	assert.False(t, typ.HasID())
	assert.Equal(t, []statement.Op{statement.Create, statement.Update}, typ.Ops())
	_, ok := typ.Template(statement.GetByID)
	assert.False(t, ok)
	assert.Equal(t, "notes", typ.Table)
}

func TestType_Errors(t *testing.T) {
	t.Run("MultipleIDs", func(t *testing.T) {
		_, err := NewType(&Config{}, &schema.Schema{
			Name:   "Pair",
			Fields: []*schema.Field{{Name: "a", ID: true}, {Name: "b", ID: true}},
		})
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
		assert.True(t, errors.Is(err, sqlcrud.ErrMultipleIDs))
	})

	t.Run("NoFields", func(t *testing.T) {
		_, err := NewType(&Config{}, &schema.Schema{Name: "Empty"})
		assert.True(t, errors.Is(err, sqlcrud.ErrNoFields))
	})

	t.Run("InvalidName", func(t *testing.T) {
		_, err := NewType(&Config{}, &schema.Schema{Name: "has-hyphen", Fields: []*schema.Field{{Name: "a"}}})
		assert.True(t, IsSchemaError(err))
	})

	t.Run("MethodCollision", func(t *testing.T) {
		_, err := NewType(&Config{}, &schema.Schema{
			Name:   "Odd",
			Fields: []*schema.Field{{Name: "create_sql", GoName: "CreateSQL"}},
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestType_Names(t *testing.T) {
	typ, err := NewType(&Config{}, &schema.Schema{Name: "BlogPost", Fields: []*schema.Field{{Name: "id", ID: true}}})
	require.NoError(t, err)

	assert.Equal(t, "blog_post", typ.Label())
	assert.Equal(t, "blog_post_sqlcrud.go", typ.FileName())
	assert.Equal(t, "BlogPostCreateSQL", typ.StaticName(statement.Create))
	assert.Equal(t, "BlogPostGetByIDSQL", typ.StaticName(statement.GetByID))
	assert.Equal(t, "BlogPostTable", typ.TableConst())
	assert.Equal(t, "BlogPostColumns", typ.ColumnsVar())
	assert.Equal(t, "blog_posts", typ.Table)
}

func TestType_Idents(t *testing.T) {
	typ, err := NewType(&Config{Features: []Feature{FeatureStatic, FeatureTable}}, personSchema())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"PersonCreateSQL",
		"PersonUpdateSQL",
		"PersonDeleteSQL",
		"PersonGetByIDSQL",
		"PersonTable",
	}, typ.Idents())

	typ, err = NewType(&Config{}, personSchema())
	require.NoError(t, err)
	assert.Empty(t, typ.Idents())
}

func TestValidSchemaName(t *testing.T) {
	require.NoError(t, ValidSchemaName("Person"))
	require.NoError(t, ValidSchemaName("person"))

	tests := []struct {
		name string
		msg  string
	}{
		{"", "cannot be empty"},
		{"../evil", "path separator"},
		{"dir/file", "path separator"},
		{`dir\file`, "path separator"},
		{"parent..", "parent directory reference"},
		{".hidden", "cannot start with a dot"},
		{"123invalid", "not a valid Go identifier"},
		{"has-hyphen", "not a valid Go identifier"},
		{"func", "not a valid Go identifier"},
		{"string", "Go predeclared identifier"},
		{"sqlcrud", "sqlcrud predeclared identifier"},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			err := ValidSchemaName(tt.name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
