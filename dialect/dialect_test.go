package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlcrud/dialect"
)

func TestPrefix(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: dialect.Postgres, want: "$"},
		{name: "POSTGRES", want: "$"},
		{name: dialect.SQLServer, want: "@P"},
		{name: "SqlServer", want: "@P"},
		{name: dialect.SQLite, want: "?"},
		{name: dialect.Oracle, want: ":"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dialect.Prefix(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrefix_Unknown(t *testing.T) {
	_, err := dialect.Prefix("gremlin")
	assert.EqualError(t, err, `dialect: unknown dialect "gremlin"`)

	_, err = dialect.Prefix(dialect.MySQL)
	assert.ErrorContains(t, err, "no numbered placeholders")
}

func TestRegister(t *testing.T) {
	dialect.Register("Custom", "#")
	got, err := dialect.Prefix("custom")
	require.NoError(t, err)
	assert.Equal(t, "#", got)
	assert.Contains(t, dialect.Names(), "Custom")

	dialect.Register("CUSTOM", "%")
	got, err = dialect.Prefix("custom")
	require.NoError(t, err)
	assert.Equal(t, "%", got)
	assert.NotContains(t, dialect.Names(), "Custom")
	assert.Contains(t, dialect.Names(), "CUSTOM")

	assert.Panics(t, func() { dialect.Register("", "$") })
	assert.Panics(t, func() { dialect.Register("x", "") })
}

func TestNames(t *testing.T) {
	names := dialect.Names()
	assert.Subset(t, names, []string{dialect.Oracle, dialect.Postgres, dialect.SQLServer, dialect.SQLite})
	assert.IsNonDecreasing(t, names)
}
