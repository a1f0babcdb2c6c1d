package update_availability

import (
	"fmt"
	"time"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/availability/models"
)

// UpsertRequest HTTP request model
type UpsertRequest struct {
	Entries []UpsertEntry `json:"entries"`
}

// UpsertEntry is one date's capacity.
type UpsertEntry struct {
	Date       string `json:"date"`
	TotalSlots int    `json:"totalSlots"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	CharterID      int64  `json:"charterId"`
	Date           string `json:"date"`
	TotalSlots     int    `json:"totalSlots"`
	BookedSlots    int    `json:"bookedSlots"`
	RemainingSlots int    `json:"remainingSlots"`
}

// SlotListResponse HTTP response model for the updated ledger rows.
type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
	Total int             `json:"total"`
}

// ToServiceRequest converts the HTTP model into the service model.
func (r *UpsertRequest) ToServiceRequest(charterID int64) (*models.UpsertSlotsRequest, error) {
	entries := make([]models.UpsertSlotEntry, len(r.Entries))
	for i, entry := range r.Entries {
		date, err := time.Parse(domain.DateFormat, entry.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %d: invalid date %q", i, entry.Date)
		}
		entries[i] = models.UpsertSlotEntry{
			Date:       date,
			TotalSlots: entry.TotalSlots,
		}
	}
	return &models.UpsertSlotsRequest{CharterID: charterID, Entries: entries}, nil
}

// FromServiceResponse converts the service model into the HTTP model.
func FromServiceResponse(resp *models.SlotListResponse) *SlotListResponse {
	slots := make([]*SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = &SlotResponse{
			CharterID:      s.CharterID,
			Date:           s.Date.Format(domain.DateFormat),
			TotalSlots:     s.TotalSlots,
			BookedSlots:    s.BookedSlots,
			RemainingSlots: s.RemainingSlots,
		}
	}
	return &SlotListResponse{Slots: slots, Total: resp.Total}
}
