// Package txmanager runs functions inside database transactions. The
// open transaction travels through context (see pkg/dbmetrics), so
// repositories pick it up transparently. Serializable scopes carry a
// bounded lock_timeout and retry serialization failures, because under
// contention PostgreSQL aborts one of the competing transactions.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/dbmetrics"
)

const (
	// maxSerializationRetries bounds transparent retries of
	// serialization failures before the error is surfaced.
	maxSerializationRetries = 3

	// retryBackoff is the pause between serialization retries.
	retryBackoff = 25 * time.Millisecond

	// lockTimeout bounds how long a transaction waits on a row lock.
	// Exceeding it aborts the transaction with ErrLockTimeout instead
	// of piling requests up during contention spikes.
	lockTimeout = 3 * time.Second
)

// PostgreSQL error codes relevant to the transactional discipline.
const (
	pqCodeLockNotAvailable     = "55P03"
	pqCodeSerializationFailure = "40001"
	pqCodeDeadlockDetected     = "40P01"
)

// TxBeginner opens transactions. Satisfied by *dbmetrics.DB and by the
// adapter in pkg/simpletxmanager.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager wraps functions in database transactions.
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager creates a transaction manager over the given
// connection.
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a read-committed transaction.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: true}, fn)
}

// DoSerializable runs fn inside a serializable transaction. Row reads
// performed by fn through the context executor share the transaction's
// isolation scope with the writes that follow them. Serialization
// failures are retried up to maxSerializationRetries times; the whole
// fn is re-executed on each attempt, so fn must be safe to repeat.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= maxSerializationRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff):
			}
		}

		err = m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
		if !errors.Is(err, ErrSerializationFailure) {
			return err
		}
	}
	return err
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if !opts.ReadOnly {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", lockTimeout.Milliseconds())); err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: set lock_timeout: %v", ErrBeginTx, err)
		}
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		tx.Rollback()
		return Classify(err)
	}

	if err := tx.Commit(); err != nil {
		// Serializable conflicts frequently surface at commit time.
		if classified := Classify(err); classified != err {
			return classified
		}
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

// Classify maps PostgreSQL concurrency errors onto the package
// sentinels. Errors that are not lock or serialization failures pass
// through unchanged.
func Classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case pqCodeLockNotAvailable:
		return fmt.Errorf("%w: %v", ErrLockTimeout, err)
	case pqCodeSerializationFailure, pqCodeDeadlockDetected:
		return fmt.Errorf("%w: %v", ErrSerializationFailure, err)
	default:
		return err
	}
}
