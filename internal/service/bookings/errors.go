package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the caller may not see the booking.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus is returned for unknown status values.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition is returned when the lifecycle does not
	// allow the requested status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("service: internal error")
)
