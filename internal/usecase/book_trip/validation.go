package book_trip

import (
	"fmt"
	"time"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
)

// validateRequest validates the incoming request fields.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CharterID <= 0 {
		return fmt.Errorf("%w: charterID must be positive", ErrInvalidInput)
	}

	if req.TripDate.IsZero() {
		return fmt.Errorf("%w: tripDate is required", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d", ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
	}

	if req.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	}

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	return nil
}

// validateDate rejects trips dated before today.
func validateDate(tripDate, now time.Time) error {
	if domain.NormalizeDate(tripDate).Before(domain.NormalizeDate(now)) {
		return ErrInvalidDate
	}
	return nil
}
