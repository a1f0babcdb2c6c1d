package txmanager

import "errors"

var (
	// ErrBeginTx is returned when a transaction cannot be opened.
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx is returned when a transaction cannot be committed.
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrLockTimeout is returned when a row lock could not be acquired
	// within the bounded lock_timeout. Callers may retry the whole
	// operation as a new transaction.
	ErrLockTimeout = errors.New("txmanager: lock wait timeout")

	// ErrSerializationFailure is returned when a serializable
	// transaction lost to a concurrent one and the retry budget is
	// exhausted.
	ErrSerializationFailure = errors.New("txmanager: serialization failure")
)
