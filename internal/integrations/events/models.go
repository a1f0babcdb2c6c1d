package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
)

// Routing keys for booking lifecycle events.
const (
	RoutingKeyBookingCreated       = "booking.created"
	RoutingKeyBookingCancelled     = "booking.cancelled"
	RoutingKeyBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is the payload published for every booking lifecycle
// transition. The reference, not the numeric ID, is the identifier
// meant for external consumers.
type BookingEvent struct {
	Reference  uuid.UUID `json:"reference"`
	BookingID  int64     `json:"bookingId"`
	UserID     int64     `json:"userId"`
	CharterID  int64     `json:"charterId"`
	TripDate   string    `json:"tripDate"`
	Guests     int       `json:"guests"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// FromBooking builds the event payload for a booking.
func FromBooking(b *domain.Booking) BookingEvent {
	return BookingEvent{
		Reference:  b.Reference,
		BookingID:  b.ID,
		UserID:     b.UserID,
		CharterID:  b.CharterID,
		TripDate:   b.TripDate.Format(domain.DateFormat),
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		OccurredAt: time.Now().UTC(),
	}
}
