// Package models defines the request and response models of the
// availability service.
package models

import (
	"time"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
)

// SlotResponse is the service-level view of a ledger row.
type SlotResponse struct {
	CharterID      int64
	Date           time.Time
	TotalSlots     int
	BookedSlots    int
	RemainingSlots int
}

// SlotListResponse wraps a list of ledger rows.
type SlotListResponse struct {
	Slots []*SlotResponse
	Total int
}

// ListSlotsRequest bounds the ledger listing.
type ListSlotsRequest struct {
	CharterID int64
	From      *time.Time
	To        *time.Time
}

// UpsertSlotsRequest seeds or resizes ledger rows for a charter.
type UpsertSlotsRequest struct {
	CharterID int64
	Entries   []UpsertSlotEntry
}

// UpsertSlotEntry is one date's capacity.
type UpsertSlotEntry struct {
	Date       time.Time
	TotalSlots int
}

// FromDomainSlot converts a domain ledger row to the response model.
func FromDomainSlot(s *domain.AvailabilitySlot) *SlotResponse {
	return &SlotResponse{
		CharterID:      s.CharterID,
		Date:           s.Date,
		TotalSlots:     s.TotalSlots,
		BookedSlots:    s.BookedSlots,
		RemainingSlots: s.RemainingSlots(),
	}
}

// FromDomainSlotList converts a list of domain ledger rows.
func FromDomainSlotList(list []*domain.AvailabilitySlot) *SlotListResponse {
	slots := make([]*SlotResponse, len(list))
	for i, s := range list {
		slots[i] = FromDomainSlot(s)
	}
	return &SlotListResponse{Slots: slots, Total: len(slots)}
}
