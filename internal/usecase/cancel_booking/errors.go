package cancel_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAccessDenied is returned when the caller does not own the booking.
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrCannotCancel is returned when the booking's status does not
	// allow cancellation.
	ErrCannotCancel = errors.New("cancel_booking: booking cannot be cancelled")

	// ErrContention is returned when the cancellation transaction lost
	// to concurrent activity on the same rows. Safe to retry whole.
	ErrContention = errors.New("cancel_booking: contention, try again")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("cancel_booking: internal error")
)
