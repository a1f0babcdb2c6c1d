package get_booking

import (
	"time"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	Reference          string  `json:"reference"`
	UserID             int64   `json:"userId"`
	CharterID          int64   `json:"charterId"`
	TripDate           string  `json:"tripDate"`
	Guests             int     `json:"guests"`
	TotalPrice         float64 `json:"totalPrice"`
	Status             string  `json:"status"`
	Message            *string `json:"message,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse converts the service model into the HTTP model.
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &BookingResponse{
		ID:                 resp.ID,
		Reference:          resp.Reference,
		UserID:             resp.UserID,
		CharterID:          resp.CharterID,
		TripDate:           resp.TripDate.Format(domain.DateFormat),
		Guests:             resp.Guests,
		TotalPrice:         resp.TotalPrice,
		Status:             resp.Status,
		Message:            resp.Message,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
