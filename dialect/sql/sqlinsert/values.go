package sqlinsert

import (
	"github.com/quillsql/quill/dialect/sql"
	"github.com/quillsql/quill/schema"
	"github.com/quillsql/quill/sqltype"
)

// Records is an ordered sequence of homogeneous insertable records. It is
// itself Insertable: its column-set is the element type's column-set (one
// column list for the whole statement), and its value-expression renders one
// value-group per element. The slice is borrowed for the duration of one
// rendering call; elements are never copied. Callers must not mutate the
// slice while a rendering is in flight.
//
// Because the column-set is a property of the element type, not of any
// element value, it is obtained from the zero value of R; R must therefore
// be a value type (or tolerate method calls on its zero value).
type Records[Tbl schema.Table, T sqltype.Type, R Insertable[Tbl, T]] []R

// Batch wraps the given records for a multi-row INSERT. The records keep
// their input order in the rendered statement.
func Batch[Tbl schema.Table, T sqltype.Type, R Insertable[Tbl, T]](recs ...R) Records[Tbl, T, R] {
	return Records[Tbl, T, R](recs)
}

// Columns returns the element type's column-set.
func (rs Records[Tbl, T, R]) Columns() ColumnSet[Tbl, T] {
	var zero R
	return zero.Columns()
}

// Values returns a value-expression that borrows the sequence and defers
// rendering until the statement is written.
func (rs Records[Tbl, T, R]) Values() Expression[T] {
	return BatchValues[Tbl, T, R]{records: rs}
}

// BatchValues is the bulk value-expression: a borrowed view over a record
// sequence. It carries no type tag of its own beyond the element type's
// fused column-set type.
type BatchValues[Tbl schema.Table, T sqltype.Type, R Insertable[Tbl, T]] struct {
	records []R
}

// ExprType pins the fused SQL type tag. Never called.
func (v BatchValues[Tbl, T, R]) ExprType() (t T) { return }

// SQL renders every record's value-expression in input order, separated by
// ", ". Zero records render nothing; rejecting an empty batch, where the
// dialect requires it, is the caller's responsibility. A failing element
// aborts the iteration and no partial fragment is salvaged.
func (v BatchValues[Tbl, T, R]) SQL(b *sql.Builder) error {
	for i := range v.records {
		if i > 0 {
			b.Comma()
		}
		if err := v.records[i].Values().SQL(b); err != nil {
			return err
		}
	}
	return nil
}
