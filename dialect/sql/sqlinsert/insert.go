// Package sqlinsert provides the compile-time-checked mapping layer between
// record values and the column and value lists of an SQL INSERT statement.
//
// A record type declares, for one target table, which columns it populates
// and how its field values become a value-expression. The SQL type produced
// by the value-expression must equal the fused type of the declared
// column-set; both are carried as phantom type parameters, so a mismatched
// mapping fails to compile rather than at render time:
//
//	type NewUser struct {
//		Name string
//		Age  int
//	}
//
//	func (u NewUser) Columns() sqlinsert.ColumnSet[userstab.Users, sqltype.Record2[sqltype.Text, sqltype.Integer]] {
//		return schema.NewColumns2(userstab.Name, userstab.Age)
//	}
//
//	func (u NewUser) Values() sqlinsert.Expression[sqltype.Record2[sqltype.Text, sqltype.Integer]] {
//		return sqlinsert.Row2(sqlinsert.Text(u.Name), sqlinsert.Int(u.Age))
//	}
//
// Slices of a mapped record type are themselves insertable through Batch,
// rendering one comma-separated value-group per element for a multi-row
// INSERT.
package sqlinsert

import (
	"context"

	"github.com/quillsql/quill"
	"github.com/quillsql/quill/dialect"
	"github.com/quillsql/quill/dialect/sql"
	"github.com/quillsql/quill/schema"
	"github.com/quillsql/quill/sqltype"
)

// Expression is a renderable value-expression tagged with the SQL type T it
// produces. The tag is phantom: ExprType is never called, it only pins T so
// the compiler can check it against a column-set's fused type. SQL writes
// argument placeholders, never literal values; binding is the driver's job.
// A render failure aborts the statement and is surfaced verbatim.
type Expression[T sqltype.Type] interface {
	SQL(*sql.Builder) error
	ExprType() T
}

// ColumnSet is an ordered, non-empty set of columns of table Tbl whose
// individual SQL types fuse, in order, to T. Names returns the comma-joined
// column names exactly as declared on the table. A single schema.Column is a
// valid ColumnSet of size one with its own type as the fused type.
type ColumnSet[Tbl schema.Table, T sqltype.Type] interface {
	Names() string
	ColumnType(Tbl) T
}

// Insertable is the record mapping contract: a type insertable into table
// Tbl. Columns must be deterministic and independent of record state; Values
// consumes the record by value and returns an expression whose type tag
// equals the column-set's fused tag. That equality is checked by the
// compiler when both methods are instantiated with the same T; it cannot
// fail at runtime.
type Insertable[Tbl schema.Table, T sqltype.Type] interface {
	Columns() ColumnSet[Tbl, T]
	Values() Expression[T]
}

// Statement renders rec as a complete INSERT statement for the given
// dialect and returns the query text with its bound arguments.
func Statement[Tbl schema.Table, T sqltype.Type](dialectName string, rec Insertable[Tbl, T]) (string, []any, error) {
	var tbl Tbl
	b := sql.Dialect(dialectName)
	b.WriteString("INSERT INTO ").Ident(tbl.TableName())
	b.WriteString(" (").WriteString(rec.Columns().Names()).WriteString(") VALUES ")
	if err := rec.Values().SQL(b); err != nil {
		return "", nil, err
	}
	if err := b.Err(); err != nil {
		return "", nil, err
	}
	query, args := b.Query()
	return query, args, nil
}

// Exec renders rec and executes it on the given driver. Failures are wrapped
// in a quill.MutationError carrying the table and operation.
func Exec[Tbl schema.Table, T sqltype.Type](ctx context.Context, drv dialect.Driver, rec Insertable[Tbl, T]) (sql.Result, error) {
	var tbl Tbl
	query, args, err := Statement(drv.Dialect(), rec)
	if err != nil {
		return nil, quill.NewMutationError(tbl.TableName(), "insert", err)
	}
	var res sql.Result
	if err := drv.Exec(ctx, query, args, &res); err != nil {
		return nil, quill.NewMutationError(tbl.TableName(), "insert", err)
	}
	return res, nil
}
