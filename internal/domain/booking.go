package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a user's reservation of a charter trip on a
// specific date
type Booking struct {
	ID         int64
	Reference  uuid.UUID // stable external identifier, safe to expose in events
	UserID     int64
	CharterID  int64
	TripDate   time.Time
	Guests     int
	TotalPrice float64
	Status     BookingStatus
	Message    *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds a ledger slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking can be confirmed by the captain
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCompleted returns true if the booking can be marked completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving to the
// given status
func (b *Booking) CanTransitionTo(status BookingStatus) bool {
	switch status {
	case StatusConfirmed:
		return b.CanBeConfirmed()
	case StatusCancelled:
		return b.CanBeCancelled()
	case StatusCompleted:
		return b.CanBeCompleted()
	default:
		return false
	}
}

// CharterBookingsFilter filters bookings fetched for a charter
type CharterBookingsFilter struct {
	CharterID       int64          // required
	StartDate       *time.Time     // period start, nil = unbounded
	EndDate         *time.Time     // period end, nil = unbounded
	Status          *BookingStatus // nil = any status
	IncludeInactive bool           // include cancelled bookings
}
