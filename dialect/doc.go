// Package dialect provides the database dialect abstraction for quill.
//
// It defines the interfaces used for database-specific operations, allowing
// the insert mapping layer to target multiple backends.
//
// # Supported Dialects
//
// Each dialect is identified by a constant string:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Driver Interface
//
// The Driver interface wraps all database operations:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The Tx interface wraps Exec and Query with Commit and Rollback, and the
// ExecQuerier interface is the subset implemented by both.
//
// # Usage
//
//	import (
//	    "github.com/quillsql/quill/dialect"
//	    "github.com/quillsql/quill/dialect/sql"
//	)
//
//	drv, err := sql.Open(dialect.Postgres, "postgres://...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
//
// Wrap a driver with Debug to log every outgoing operation through slog.
package dialect
