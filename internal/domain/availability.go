package domain

import "time"

// AvailabilitySlot is the per-charter, per-date ledger row tracking
// total versus consumed capacity. Invariant under concurrent mutation:
// 0 <= BookedSlots <= TotalSlots. The row is mutated only through the
// conditional reserve and release operations of the availability
// repository.
type AvailabilitySlot struct {
	ID          int64
	CharterID   int64
	Date        time.Time // calendar day, time-of-day stripped
	TotalSlots  int
	BookedSlots int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RemainingSlots returns the number of slots still bookable.
func (s *AvailabilitySlot) RemainingSlots() int {
	return s.TotalSlots - s.BookedSlots
}

// HasCapacity reports whether the row can absorb n more bookings.
func (s *AvailabilitySlot) HasCapacity(n int) bool {
	return s.RemainingSlots() >= n
}

// IsFullyBooked returns true if no slots remain.
func (s *AvailabilitySlot) IsFullyBooked() bool {
	return s.RemainingSlots() <= 0
}

// NormalizeDate strips the time-of-day component to match ledger
// granularity. Ledger dates are kept in UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsSameDay reports whether two timestamps fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	return NormalizeDate(a).Equal(NormalizeDate(b))
}
