package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilitySlotCapacity(t *testing.T) {
	slot := &AvailabilitySlot{TotalSlots: 3, BookedSlots: 2}

	assert.Equal(t, 1, slot.RemainingSlots())
	assert.True(t, slot.HasCapacity(1))
	assert.False(t, slot.HasCapacity(2))
	assert.False(t, slot.IsFullyBooked())

	slot.BookedSlots = 3
	assert.True(t, slot.IsFullyBooked())
	assert.False(t, slot.HasCapacity(1))
}

func TestNormalizeDate(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	input := time.Date(2026, 7, 4, 1, 30, 0, 0, moscow) // 2026-07-03 22:30 UTC

	normalized := NormalizeDate(input)

	assert.Equal(t, time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC), normalized)
	assert.Equal(t, time.UTC, normalized.Location())
}

func TestIsSameDay(t *testing.T) {
	morning := time.Date(2026, 7, 4, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 7, 4, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsSameDay(morning, evening))
	assert.False(t, IsSameDay(evening, nextDay))
}
