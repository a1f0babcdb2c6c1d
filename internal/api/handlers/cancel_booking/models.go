package cancel_booking

import (
	cancelBooking "github.com/Cris-Baez/CharteredCatch-sub000/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CancelBookingRequest) ToUseCaseRequest(userID int64) *cancelBooking.Request {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &cancelBooking.Request{
		UserID:             userID,
		CancellationReason: reason,
	}
}
