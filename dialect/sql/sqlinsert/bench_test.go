package sqlinsert_test

import (
	"testing"

	"github.com/quillsql/quill/dialect"
	"github.com/quillsql/quill/dialect/sql/sqlinsert"
)

func BenchmarkStatementSingle(b *testing.B) {
	rec := newUser{name: "Ann", age: 30}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := sqlinsert.Statement[users, userRow](dialect.Postgres, rec); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStatementBatch100(b *testing.B) {
	records := make([]newUser, 100)
	for i := range records {
		records[i] = newUser{name: "u", age: i}
	}
	batch := sqlinsert.Batch[users, userRow](records...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := sqlinsert.Statement[users, userRow](dialect.MySQL, batch); err != nil {
			b.Fatal(err)
		}
	}
}
