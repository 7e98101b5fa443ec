package schema

import (
	"github.com/quillsql/quill/sqltype"
)

// Column identifies one attribute of table Tbl with declared SQL type T.
// A column is itself a valid column-set of size one: its fused type is its
// own declared type and its name list is its bare name.
type Column[Tbl Table, T sqltype.Type] struct {
	name string
}

// NewColumn returns the column identity for the given name.
func NewColumn[Tbl Table, T sqltype.Type](name string) Column[Tbl, T] {
	return Column[Tbl, T]{name: name}
}

// Name returns the column name exactly as declared on the table.
func (c Column[Tbl, T]) Name() string { return c.name }

// Names implements the column-set contract for the size-one case.
func (c Column[Tbl, T]) Names() string { return c.name }

// ColumnType pins the table and SQL type tags. It is never called; its
// signature is what forces the compiler to unify the tags.
func (c Column[Tbl, T]) ColumnType(Tbl) (t T) { return }

// Columns1 is an ordered set of one column with fused type Record1[A].
// It differs from the bare column set in that its value-groups render
// parenthesized, which is what multi-row VALUES clauses require.
type Columns1[Tbl Table, A sqltype.Type] struct {
	A Column[Tbl, A]
}

// NewColumns1 returns the one-column set for a.
func NewColumns1[Tbl Table, A sqltype.Type](a Column[Tbl, A]) Columns1[Tbl, A] {
	return Columns1[Tbl, A]{A: a}
}

// Names returns the column name.
func (c Columns1[Tbl, A]) Names() string { return c.A.Name() }

// ColumnType pins the table and fused type tags.
func (c Columns1[Tbl, A]) ColumnType(Tbl) (t sqltype.Record1[A]) { return }

// Columns2 is an ordered set of two columns of one table with fused type
// Record2[A, B].
type Columns2[Tbl Table, A, B sqltype.Type] struct {
	A Column[Tbl, A]
	B Column[Tbl, B]
}

// NewColumns2 returns the two-column set (a, b), in that order.
func NewColumns2[Tbl Table, A, B sqltype.Type](a Column[Tbl, A], b Column[Tbl, B]) Columns2[Tbl, A, B] {
	return Columns2[Tbl, A, B]{A: a, B: b}
}

// Names returns the comma-joined column names in declaration order.
func (c Columns2[Tbl, A, B]) Names() string {
	return c.A.Name() + ", " + c.B.Name()
}

// ColumnType pins the table and fused type tags.
func (c Columns2[Tbl, A, B]) ColumnType(Tbl) (t sqltype.Record2[A, B]) { return }

// Columns3 is an ordered set of three columns with fused type Record3[A, B, C].
type Columns3[Tbl Table, A, B, C sqltype.Type] struct {
	A Column[Tbl, A]
	B Column[Tbl, B]
	C Column[Tbl, C]
}

// NewColumns3 returns the three-column set (a, b, c), in that order.
func NewColumns3[Tbl Table, A, B, C sqltype.Type](a Column[Tbl, A], b Column[Tbl, B], c Column[Tbl, C]) Columns3[Tbl, A, B, C] {
	return Columns3[Tbl, A, B, C]{A: a, B: b, C: c}
}

// Names returns the comma-joined column names in declaration order.
func (c Columns3[Tbl, A, B, C]) Names() string {
	return c.A.Name() + ", " + c.B.Name() + ", " + c.C.Name()
}

// ColumnType pins the table and fused type tags.
func (c Columns3[Tbl, A, B, C]) ColumnType(Tbl) (t sqltype.Record3[A, B, C]) { return }

// Columns4 is an ordered set of four columns with fused type Record4[A, B, C, D].
type Columns4[Tbl Table, A, B, C, D sqltype.Type] struct {
	A Column[Tbl, A]
	B Column[Tbl, B]
	C Column[Tbl, C]
	D Column[Tbl, D]
}

// NewColumns4 returns the four-column set (a, b, c, d), in that order.
func NewColumns4[Tbl Table, A, B, C, D sqltype.Type](a Column[Tbl, A], b Column[Tbl, B], c Column[Tbl, C], d Column[Tbl, D]) Columns4[Tbl, A, B, C, D] {
	return Columns4[Tbl, A, B, C, D]{A: a, B: b, C: c, D: d}
}

// Names returns the comma-joined column names in declaration order.
func (c Columns4[Tbl, A, B, C, D]) Names() string {
	return c.A.Name() + ", " + c.B.Name() + ", " + c.C.Name() + ", " + c.D.Name()
}

// ColumnType pins the table and fused type tags.
func (c Columns4[Tbl, A, B, C, D]) ColumnType(Tbl) (t sqltype.Record4[A, B, C, D]) { return }
