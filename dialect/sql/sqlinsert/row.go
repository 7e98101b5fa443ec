package sqlinsert

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/quillsql/quill/dialect/sql"
	"github.com/quillsql/quill/sqltype"
)

// value is a single bound argument tagged with SQL type T.
type value[T sqltype.Type] struct {
	v any
}

func (e value[T]) ExprType() (t T) { return }

func (e value[T]) SQL(b *sql.Builder) error {
	return b.Arg(e.v)
}

// Text binds a string value as a TEXT expression.
func Text(v string) Expression[sqltype.Text] {
	return value[sqltype.Text]{v}
}

// Int binds an int value as an INTEGER expression.
func Int(v int) Expression[sqltype.Integer] {
	return value[sqltype.Integer]{v}
}

// Int64 binds an int64 value as a BIGINT expression.
func Int64(v int64) Expression[sqltype.BigInt] {
	return value[sqltype.BigInt]{v}
}

// Bool binds a bool value as a BOOLEAN expression.
func Bool(v bool) Expression[sqltype.Bool] {
	return value[sqltype.Bool]{v}
}

// Float binds a float64 value as a DOUBLE PRECISION expression.
func Float(v float64) Expression[sqltype.Double] {
	return value[sqltype.Double]{v}
}

// Time binds a time.Time value as a TIMESTAMP expression.
func Time(v time.Time) Expression[sqltype.Timestamp] {
	return value[sqltype.Timestamp]{v}
}

// BytesValue binds a byte slice as a BYTEA/BLOB expression.
func BytesValue(v []byte) Expression[sqltype.Bytes] {
	return value[sqltype.Bytes]{v}
}

// UUIDValue binds a uuid.UUID as a UUID expression. The value is bound in
// its string form, which every supported dialect accepts.
func UUIDValue(v uuid.UUID) Expression[sqltype.UUID] {
	return value[sqltype.UUID]{v.String()}
}

// Null binds SQL NULL for a nullable column of underlying type T.
func Null[T sqltype.Type]() Expression[sqltype.Nullable[T]] {
	return value[sqltype.Nullable[T]]{nil}
}

// nullable widens a non-null expression to its nullable column type.
type nullable[T sqltype.Type] struct {
	inner Expression[T]
}

func (e nullable[T]) ExprType() (t sqltype.Nullable[T]) { return }

func (e nullable[T]) SQL(b *sql.Builder) error {
	return e.inner.SQL(b)
}

// AsNullable widens e so it can populate a nullable column of type T.
func AsNullable[T sqltype.Type](e Expression[T]) Expression[sqltype.Nullable[T]] {
	return nullable[T]{inner: e}
}

// TextArray binds a string slice as a TEXT[] expression (postgres).
func TextArray(vs []string) Expression[sqltype.Array[sqltype.Text]] {
	return value[sqltype.Array[sqltype.Text]]{pq.Array(vs)}
}

// Int64Array binds an int64 slice as a BIGINT[] expression (postgres).
func Int64Array(vs []int64) Expression[sqltype.Array[sqltype.BigInt]] {
	return value[sqltype.Array[sqltype.BigInt]]{pq.Array(vs)}
}

// row1 through row4 fuse tagged expressions into one parenthesized
// value-group carrying the corresponding RecordN tag.

type row1[A sqltype.Type] struct {
	a Expression[A]
}

func (r row1[A]) ExprType() (t sqltype.Record1[A]) { return }

func (r row1[A]) SQL(b *sql.Builder) error {
	b.WriteByte('(')
	if err := r.a.SQL(b); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}

// Row1 fuses one expression into a value-group of type Record1[A].
func Row1[A sqltype.Type](a Expression[A]) Expression[sqltype.Record1[A]] {
	return row1[A]{a: a}
}

type row2[A, B sqltype.Type] struct {
	a Expression[A]
	b Expression[B]
}

func (r row2[A, B]) ExprType() (t sqltype.Record2[A, B]) { return }

func (r row2[A, B]) SQL(b *sql.Builder) error {
	b.WriteByte('(')
	if err := r.a.SQL(b); err != nil {
		return err
	}
	b.Comma()
	if err := r.b.SQL(b); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}

// Row2 fuses two expressions, in order, into a value-group of type
// Record2[A, B].
func Row2[A, B sqltype.Type](a Expression[A], b Expression[B]) Expression[sqltype.Record2[A, B]] {
	return row2[A, B]{a: a, b: b}
}

type row3[A, B, C sqltype.Type] struct {
	a Expression[A]
	b Expression[B]
	c Expression[C]
}

func (r row3[A, B, C]) ExprType() (t sqltype.Record3[A, B, C]) { return }

func (r row3[A, B, C]) SQL(b *sql.Builder) error {
	b.WriteByte('(')
	if err := r.a.SQL(b); err != nil {
		return err
	}
	b.Comma()
	if err := r.b.SQL(b); err != nil {
		return err
	}
	b.Comma()
	if err := r.c.SQL(b); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}

// Row3 fuses three expressions, in order, into a value-group of type
// Record3[A, B, C].
func Row3[A, B, C sqltype.Type](a Expression[A], b Expression[B], c Expression[C]) Expression[sqltype.Record3[A, B, C]] {
	return row3[A, B, C]{a: a, b: b, c: c}
}

type row4[A, B, C, D sqltype.Type] struct {
	a Expression[A]
	b Expression[B]
	c Expression[C]
	d Expression[D]
}

func (r row4[A, B, C, D]) ExprType() (t sqltype.Record4[A, B, C, D]) { return }

func (r row4[A, B, C, D]) SQL(b *sql.Builder) error {
	b.WriteByte('(')
	if err := r.a.SQL(b); err != nil {
		return err
	}
	b.Comma()
	if err := r.b.SQL(b); err != nil {
		return err
	}
	b.Comma()
	if err := r.c.SQL(b); err != nil {
		return err
	}
	b.Comma()
	if err := r.d.SQL(b); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}

// Row4 fuses four expressions, in order, into a value-group of type
// Record4[A, B, C, D].
func Row4[A, B, C, D sqltype.Type](a Expression[A], b Expression[B], c Expression[C], d Expression[D]) Expression[sqltype.Record4[A, B, C, D]] {
	return row4[A, B, C, D]{a: a, b: b, c: c, d: d}
}
