package availability

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("availability service: invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("availability service: internal error")
)
