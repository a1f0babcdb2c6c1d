package get_charter_bookings

import (
	"time"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64   `json:"id"`
	Reference  string  `json:"reference"`
	UserID     int64   `json:"userId"`
	CharterID  int64   `json:"charterId"`
	TripDate   string  `json:"tripDate"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
	Message    *string `json:"message,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// BookingListResponse HTTP response model for the captain's dashboard.
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromServiceResponse converts the service model into the HTTP model.
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	bookings := make([]*BookingResponse, len(resp.Bookings))
	for i, b := range resp.Bookings {
		bookings[i] = &BookingResponse{
			ID:         b.ID,
			Reference:  b.Reference,
			UserID:     b.UserID,
			CharterID:  b.CharterID,
			TripDate:   b.TripDate.Format(domain.DateFormat),
			Guests:     b.Guests,
			TotalPrice: b.TotalPrice,
			Status:     b.Status,
			Message:    b.Message,
			CreatedAt:  b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &BookingListResponse{Bookings: bookings, Total: resp.Total}
}
