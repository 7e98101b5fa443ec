package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillsql/quill/dialect"
)

func TestBuilderPlaceholders(t *testing.T) {
	t.Parallel()
	b := Dialect(dialect.Postgres)
	require.NoError(t, b.Args("a", "b", "c"))
	query, args := b.Query()
	assert.Equal(t, "$1, $2, $3", query)
	assert.Equal(t, []any{"a", "b", "c"}, args)

	b = Dialect(dialect.MySQL)
	require.NoError(t, b.Args("a", "b"))
	query, _ = b.Query()
	assert.Equal(t, "?, ?", query)
}

func TestBuilderIdent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		dialect string
		ident   string
		want    string
	}{
		{dialect.Postgres, "users", `"users"`},
		{dialect.MySQL, "users", "`users`"},
		{dialect.SQLite, "users", "`users`"},
		{dialect.Postgres, "public.users", `"public.users"`},
	}
	for _, tt := range tests {
		b := Dialect(tt.dialect)
		b.Ident(tt.ident)
		require.NoError(t, b.Err())
		assert.Equal(t, tt.want, b.String())
	}
}

func TestBuilderInvalidIdent(t *testing.T) {
	t.Parallel()
	for _, ident := range []string{"", "users; DROP TABLE users", "1users", `us"ers`} {
		b := Dialect(dialect.Postgres)
		b.Ident(ident)
		assert.Error(t, b.Err(), "identifier %q should be rejected", ident)
	}
}

func TestBuilderErrSticky(t *testing.T) {
	t.Parallel()
	b := Dialect(dialect.Postgres)
	b.Ident("bad ident")
	first := b.Err()
	require.Error(t, first)
	b.Ident("another bad one")
	assert.Same(t, first, b.Err())
}

func TestBuilderArgLimit(t *testing.T) {
	t.Parallel()
	b := Dialect(dialect.MySQL)
	for i := 0; i < maxArgs; i++ {
		require.NoError(t, b.Arg(i))
	}
	err := b.Arg("one too many")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArgLimit)
	assert.ErrorIs(t, b.Err(), ErrArgLimit)
	assert.Equal(t, maxArgs, b.TotalArgs())
}

func TestBuilderWrap(t *testing.T) {
	t.Parallel()
	b := Dialect(dialect.Postgres)
	b.WriteString("INSERT INTO ").Ident("users").Pad().Wrap(func(b *Builder) {
		b.Ident("name").Comma().Ident("age")
	})
	require.NoError(t, b.Err())
	assert.Equal(t, `INSERT INTO "users" ("name", "age")`, b.String())
}
