// Package quill provides a compile-time-checked mapping layer for building
// SQL INSERT statements from typed records.
//
// A record type declares the columns it populates and how its values render;
// the compiler verifies that the SQL type of the value-expression equals the
// fused type of the column-set, so a mismatched mapping never reaches the
// database.
//
// # Packages
//
//   - sqltype: phantom SQL type tags and fused composite tags
//   - schema: table and column identity, typed column sets
//   - dialect: driver abstraction (Postgres, MySQL, SQLite)
//   - dialect/sql: low-level statement builder and database/sql driver
//   - dialect/sql/sqlinsert: the Insertable contract, typed value binders,
//     and the bulk (multi-row) value renderer
//
// # Usage
//
//	type Users struct{}
//
//	func (Users) TableName() string { return "users" }
//
//	var (
//		Name = schema.NewColumn[Users, sqltype.Text]("name")
//		Age  = schema.NewColumn[Users, sqltype.Integer]("age")
//	)
//
//	type NewUser struct {
//		Name string
//		Age  int
//	}
//
//	func (u NewUser) Columns() sqlinsert.ColumnSet[Users, sqltype.Record2[sqltype.Text, sqltype.Integer]] {
//		return schema.NewColumns2(Name, Age)
//	}
//
//	func (u NewUser) Values() sqlinsert.Expression[sqltype.Record2[sqltype.Text, sqltype.Integer]] {
//		return sqlinsert.Row2(sqlinsert.Text(u.Name), sqlinsert.Int(u.Age))
//	}
//
//	query, args, err := sqlinsert.Statement[Users, sqltype.Record2[sqltype.Text, sqltype.Integer]](
//		dialect.Postgres, NewUser{Name: "Ann", Age: 30},
//	)
//	// INSERT INTO "users" (name, age) VALUES ($1, $2)
//
// Slices of a mapped type insert as one multi-row statement through
// sqlinsert.Batch; value-groups keep the input order.
package quill
