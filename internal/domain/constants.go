package domain

// SlotsPerBooking is the number of ledger slots one booking consumes.
// A booking occupies exactly one slot regardless of guest count: a
// charter sells trips, not seats.
const SlotsPerBooking = 1

// Business validation constants
const (
	MinGuests                   = 1
	MaxGuests                   = 20
	MinTotalSlots               = 1
	MaxTotalSlots               = 50
	MaxMessageLength            = 500
	MaxCancellationReasonLength = 500
	MaxAvailabilityWindowDays   = 365
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses that no longer hold a ledger slot.
// Used when filtering active bookings.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
