package create_booking

import (
	"time"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	bookTrip "github.com/Cris-Baez/CharteredCatch-sub000/internal/usecase/book_trip"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CharterID  int64   `json:"charterId"`
	TripDate   string  `json:"tripDate"` // "2026-09-01"
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"totalPrice"`
	Message    *string `json:"message,omitempty"`
}

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

// ToUseCaseRequest converts the HTTP request into the use case model.
// The caller identity comes from the auth middleware, not the body.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*bookTrip.Request, error) {
	tripDate, err := time.Parse(domain.DateFormat, r.TripDate)
	if err != nil {
		return nil, err
	}

	return &bookTrip.Request{
		UserID:     userID,
		CharterID:  r.CharterID,
		TripDate:   tripDate,
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice,
		Message:    r.Message,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *bookTrip.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		Reference:  resp.Reference.String(),
		UserID:     resp.UserID,
		CharterID:  resp.CharterID,
		TripDate:   resp.TripDate.Format(domain.DateFormat),
		Guests:     resp.Guests,
		TotalPrice: resp.TotalPrice,
		Status:     resp.Status,
		Message:    resp.Message,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
