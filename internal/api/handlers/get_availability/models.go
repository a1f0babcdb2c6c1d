package get_availability

import (
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/availability/models"
)

// SlotResponse HTTP response model
type SlotResponse struct {
	CharterID      int64  `json:"charterId"`
	Date           string `json:"date"`
	TotalSlots     int    `json:"totalSlots"`
	BookedSlots    int    `json:"bookedSlots"`
	RemainingSlots int    `json:"remainingSlots"`
}

// SlotListResponse HTTP response model for the availability calendar.
type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
	Total int             `json:"total"`
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
