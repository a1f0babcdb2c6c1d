package availability

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResult struct {
	rowsAffected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rowsAffected, nil }

// capturingExecutor records the SQL the repository emits. Row-returning
// queries are not faked here; those paths are covered by the service
// and use case tests against stub repositories.
type capturingExecutor struct {
	query        string
	args         []interface{}
	rowsAffected int64
	execErr      error
}

func (e *capturingExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.query = query
	e.args = args
	if e.execErr != nil {
		return nil, e.execErr
	}
	return fakeResult{rowsAffected: e.rowsAffected}, nil
}

func (e *capturingExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (e *capturingExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

var tripDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

func TestReserve_ConditionalUpdate(t *testing.T) {
	executor := &capturingExecutor{rowsAffected: 1}
	repo := NewRepository(executor)

	reserved, err := repo.Reserve(context.Background(), 7, tripDate, 1)

	require.NoError(t, err)
	assert.True(t, reserved)

	// The guard must live in the UPDATE itself: the write only applies
	// while capacity remains at write time.
	assert.Contains(t, executor.query, "UPDATE availability_slots")
	assert.Contains(t, executor.query, "booked_slots = booked_slots + $")
	assert.Contains(t, executor.query, "booked_slots + $")
	assert.Contains(t, executor.query, "<= total_slots")
	assert.Contains(t, executor.args, int64(7))
	assert.Contains(t, executor.args, tripDate)
}

func TestReserve_ZeroRowsMeansNoCapacity(t *testing.T) {
	executor := &capturingExecutor{rowsAffected: 0}
	repo := NewRepository(executor)

	reserved, err := repo.Reserve(context.Background(), 7, tripDate, 1)

	require.NoError(t, err, "losing the race is an outcome, not an error")
	assert.False(t, reserved)
}

func TestReserve_ExecError(t *testing.T) {
	executor := &capturingExecutor{execErr: errors.New("connection reset")}
	repo := NewRepository(executor)

	_, err := repo.Reserve(context.Background(), 7, tripDate, 1)

	require.ErrorIs(t, err, ErrExecQuery)
}

func TestRelease_FlooredAtZero(t *testing.T) {
	executor := &capturingExecutor{rowsAffected: 1}
	repo := NewRepository(executor)

	err := repo.Release(context.Background(), 7, tripDate, 1)

	require.NoError(t, err)
	assert.Contains(t, executor.query, "UPDATE availability_slots")
	assert.Contains(t, executor.query, "GREATEST(booked_slots - $")
	assert.Contains(t, executor.query, ", 0)")
}

func TestRelease_MissingRow(t *testing.T) {
	executor := &capturingExecutor{rowsAffected: 0}
	repo := NewRepository(executor)

	err := repo.Release(context.Background(), 7, tripDate, 1)

	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestRelease_NormalizesDate(t *testing.T) {
	executor := &capturingExecutor{rowsAffected: 1}
	repo := NewRepository(executor)

	afternoon := time.Date(2026, 9, 10, 15, 45, 12, 0, time.UTC)
	err := repo.Release(context.Background(), 7, afternoon, 1)

	require.NoError(t, err)
	assert.Contains(t, executor.args, tripDate, "ledger rows are keyed by day, not timestamp")
}
