// Package sql provides SQL statement building primitives and the
// database/sql driver implementation used by quill.
//
// # Builder Types
//
//   - Builder: low-level SQL string accumulator with identifier quoting,
//     dialect-aware placeholders, and argument collection
//   - InsertBuilder: INSERT statement builder with multi-row VALUES and
//     RETURNING support
//
// # Dialect Support
//
// Statement rendering adapts to the target dialect:
//
//	b := sql.Dialect(dialect.Postgres)
//	b.WriteString("INSERT INTO ").Ident("users")
//	// postgres placeholders: $1, $2, ...
//
// # Placeholder Limit
//
// The mysql and postgres wire protocols cap the number of bound parameters
// per statement. Builder.Arg fails with ErrArgLimit past that cap, and the
// failure aborts rendering; split oversized batches before rendering them.
//
// # Drivers
//
// Open and OpenDB wrap database/sql connections in the dialect.Driver
// interface. NewStatsDriver adds statement statistics and slow-statement
// detection on top of any driver.
package sql
