package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor is the minimal query surface shared by *sql.DB, *sql.Tx
// and the instrumented wrappers in this package. Repositories depend on
// it instead of a concrete handle.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a DBExecutor bound to an open transaction.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}
