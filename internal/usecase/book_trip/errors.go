package book_trip

import "errors"

var (
	// ErrNoAvailability is returned when the requested date has no
	// remaining capacity. Expected and user-facing, not a system fault.
	ErrNoAvailability = errors.New("book_trip: no availability for requested date")

	// ErrContention is returned when the booking transaction could not
	// acquire the ledger row within the bounded lock timeout, or lost
	// every serialization retry. The whole call is safe to retry as a
	// fresh transaction.
	ErrContention = errors.New("book_trip: booking contention, try again")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("book_trip: invalid input data")

	// ErrInvalidDate is returned when the trip date is unusable.
	ErrInvalidDate = errors.New("book_trip: invalid trip date")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("book_trip: internal error")
)
