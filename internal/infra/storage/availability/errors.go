package availability

import "errors"

var (
	// ErrSlotNotFound is returned when no ledger row exists for the
	// requested charter and date.
	ErrSlotNotFound = errors.New("availability.repository: slot not found")

	// ErrBuildQuery is returned when an SQL query cannot be built.
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute.
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow is returned when a query result cannot be scanned.
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
