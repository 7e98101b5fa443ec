// Package sqltype defines the SQL type tags used by the insert mapping layer.
//
// Tags are phantom types: they carry no runtime data and exist only so the
// compiler can check that the SQL type produced by a value-expression equals
// the SQL type declared by the column-set it is inserted into. A column set
// spanning several columns is tagged with a RecordN composite that fuses the
// individual column tags in declaration order:
//
//	// users(name TEXT, age INTEGER)
//	sqltype.Record2[sqltype.Text, sqltype.Integer]
//
// A mapping whose value-expression tag disagrees with its column-set tag
// fails to compile; there is no runtime fallback.
package sqltype

// Type is the constraint satisfied by every SQL type tag. The marker method
// keeps arbitrary types from posing as tags.
type Type interface {
	sqlType()
}

type (
	// Text tags TEXT/VARCHAR columns.
	Text struct{}
	// Integer tags 32-bit INTEGER columns.
	Integer struct{}
	// BigInt tags 64-bit BIGINT columns.
	BigInt struct{}
	// Bool tags BOOLEAN columns.
	Bool struct{}
	// Double tags DOUBLE PRECISION columns.
	Double struct{}
	// Timestamp tags TIMESTAMP columns.
	Timestamp struct{}
	// Bytes tags BYTEA/BLOB columns.
	Bytes struct{}
	// UUID tags UUID columns.
	UUID struct{}
)

func (Text) sqlType()      {}
func (Integer) sqlType()   {}
func (BigInt) sqlType()    {}
func (Bool) sqlType()      {}
func (Double) sqlType()    {}
func (Timestamp) sqlType() {}
func (Bytes) sqlType()     {}
func (UUID) sqlType()      {}

// Nullable tags a nullable column of underlying type T.
type Nullable[T Type] struct{}

func (Nullable[T]) sqlType() {}

// Array tags an array column whose elements are of type T. Only dialects
// with native array support (postgres) accept it.
type Array[T Type] struct{}

func (Array[T]) sqlType() {}

// Record1 is the fused type of a single-column set. It is distinct from the
// bare column tag so that a one-column row group still renders as "(?)".
type Record1[A Type] struct{}

func (Record1[A]) sqlType() {}

// Record2 is the fused type of a two-column set, in column order.
type Record2[A, B Type] struct{}

func (Record2[A, B]) sqlType() {}

// Record3 is the fused type of a three-column set, in column order.
type Record3[A, B, C Type] struct{}

func (Record3[A, B, C]) sqlType() {}

// Record4 is the fused type of a four-column set, in column order.
type Record4[A, B, C, D Type] struct{}

func (Record4[A, B, C, D]) sqlType() {}
