package sql

import (
	"fmt"

	"github.com/quillsql/quill/dialect"
)

// InsertBuilder is the builder for INSERT statements.
//
//	sql.Insert("users").
//		Columns("name", "age").
//		Values("Ann", 30).
//		Values("Ben", 28)
type InsertBuilder struct {
	dialect   string
	table     string
	columns   []string
	values    [][]any
	returning []string
	defaults  bool
	conflict  string
}

// Insert creates a builder for the INSERT statement.
func Insert(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// SetDialect sets the dialect the statement is rendered for.
func (i *InsertBuilder) SetDialect(name string) *InsertBuilder {
	i.dialect = name
	return i
}

// Columns appends the given columns to the INSERT statement.
func (i *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	i.columns = append(i.columns, columns...)
	return i
}

// Values appends one row of values to the statement. Each call adds one
// value-group; call it once per row for a multi-row insert.
func (i *InsertBuilder) Values(values ...any) *InsertBuilder {
	i.values = append(i.values, values)
	return i
}

// Default sets the default values clause of the insert
// (INSERT INTO ... DEFAULT VALUES).
func (i *InsertBuilder) Default() *InsertBuilder {
	i.defaults = true
	return i
}

// Returning adds the RETURNING clause to the insert statement.
// Supported by SQLite and PostgreSQL.
func (i *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	i.returning = columns
	return i
}

// OnConflictDoNothing appends the "ON CONFLICT DO NOTHING" clause
// ("INSERT IGNORE" semantics on MySQL are not emulated).
func (i *InsertBuilder) OnConflictDoNothing() *InsertBuilder {
	i.conflict = "ON CONFLICT DO NOTHING"
	return i
}

// Query returns the rendered INSERT statement and its bound arguments.
// The error, if any, was recorded while rendering (invalid identifier,
// argument limit).
func (i *InsertBuilder) Query() (string, []any, error) {
	b := Dialect(i.dialect)
	b.WriteString("INSERT INTO ").Ident(i.table)
	if i.defaults && len(i.columns) == 0 {
		b.WriteString(" DEFAULT VALUES")
		return i.finish(b)
	}
	b.Pad().Wrap(func(b *Builder) {
		for n, c := range i.columns {
			if n > 0 {
				b.Comma()
			}
			b.Ident(c)
		}
	})
	b.WriteString(" VALUES ")
	for n, row := range i.values {
		if n > 0 {
			b.Comma()
		}
		if len(row) != len(i.columns) {
			b.AddError(fmt.Errorf("dialect/sql: insert %q: %d values for %d columns", i.table, len(row), len(i.columns)))
			break
		}
		b.WriteByte('(')
		if err := b.Args(row...); err != nil {
			break
		}
		b.WriteByte(')')
	}
	return i.finish(b)
}

// finish appends the trailing clauses and extracts the builder state.
func (i *InsertBuilder) finish(b *Builder) (string, []any, error) {
	if i.conflict != "" {
		b.Pad().WriteString(i.conflict)
	}
	if len(i.returning) > 0 && i.dialect != dialect.MySQL {
		b.WriteString(" RETURNING ")
		for n, c := range i.returning {
			if n > 0 {
				b.Comma()
			}
			b.Ident(c)
		}
	}
	if err := b.Err(); err != nil {
		return "", nil, err
	}
	query, args := b.Query()
	return query, args, nil
}
