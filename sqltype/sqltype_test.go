package sqltype_test

import (
	"testing"

	"github.com/quillsql/quill/sqltype"
)

// isType asserts at compile time that T satisfies the Type constraint.
func isType[T sqltype.Type]() {}

// TestTags pins the tag grid: every tag, including nullable, array and fused
// composites, satisfies the Type constraint. The assertions are compile-time;
// the test body only keeps the instantiations referenced.
func TestTags(t *testing.T) {
	t.Parallel()
	isType[sqltype.Text]()
	isType[sqltype.Integer]()
	isType[sqltype.BigInt]()
	isType[sqltype.Bool]()
	isType[sqltype.Double]()
	isType[sqltype.Timestamp]()
	isType[sqltype.Bytes]()
	isType[sqltype.UUID]()
	isType[sqltype.Nullable[sqltype.Text]]()
	isType[sqltype.Array[sqltype.BigInt]]()
	isType[sqltype.Record1[sqltype.Text]]()
	isType[sqltype.Record2[sqltype.Text, sqltype.Integer]]()
	isType[sqltype.Record3[sqltype.Text, sqltype.Integer, sqltype.Bool]]()
	isType[sqltype.Record4[sqltype.UUID, sqltype.Timestamp, sqltype.Bool, sqltype.Nullable[sqltype.Text]]]()
}
