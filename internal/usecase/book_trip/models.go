package book_trip

import (
	"time"

	"github.com/google/uuid"
)

// Request is the booking request entering the coordinator.
type Request struct {
	UserID     int64     // caller identity, from the auth middleware
	CharterID  int64     // charter being booked
	TripDate   time.Time // requested calendar day
	Guests     int       // party size; does not scale slot consumption
	TotalPrice float64   // price quoted to the user at booking time
	Message    *string   // optional note to the captain
}

// Response carries the created booking back to the handler.
type Response struct {
	ID         int64
	Reference  uuid.UUID
	UserID     int64
	CharterID  int64
	TripDate   time.Time
	Guests     int
	TotalPrice float64
	Status     string
	Message    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
