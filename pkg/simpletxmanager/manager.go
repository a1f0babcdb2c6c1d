// Package simpletxmanager provides the transaction manager over a bare
// *sql.DB, for deployments running without the metrics wrapper.
package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/dbmetrics"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/txmanager"
)

// TransactionManager delegates to pkg/txmanager with a plain *sql.DB
// underneath. Errors are the txmanager sentinels, so callers map them
// identically regardless of which manager is wired.
type TransactionManager struct {
	inner *txmanager.TransactionManager
}

// NewTransactionManager creates a transaction manager over a plain
// database handle.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{inner: txmanager.NewTransactionManager(beginner{db: db})}
}

// Do runs fn inside a read-committed transaction.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.Do(ctx, fn)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.DoReadOnly(ctx, fn)
}

// DoSerializable runs fn inside a serializable transaction with
// serialization-failure retries.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.inner.DoSerializable(ctx, fn)
}

// beginner adapts *sql.DB to txmanager.TxBeginner. *sql.Tx already
// satisfies dbmetrics.TxExecutor.
type beginner struct {
	db *sql.DB
}

func (b beginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}
