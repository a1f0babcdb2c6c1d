// Package models defines the request and response models of the
// bookings service.
package models

import (
	"time"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
)

// BookingResponse is the service-level view of a booking.
type BookingResponse struct {
	ID                 int64
	Reference          string
	UserID             int64
	CharterID          int64
	TripDate           time.Time
	Guests             int
	TotalPrice         float64
	Status             string
	Message            *string
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BookingListResponse wraps a list of bookings.
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// GetUserBookingsRequest filters a user's booking history.
type GetUserBookingsRequest struct {
	UserID int64
	Status *string
}

// GetCharterBookingsRequest filters a charter's bookings.
type GetCharterBookingsRequest struct {
	CharterID       int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// UpdateStatusRequest carries a captain's status transition.
type UpdateStatusRequest struct {
	UserID int64
	Status string
}

// FromDomainBooking converts a domain booking to the response model.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference.String(),
		UserID:             b.UserID,
		CharterID:          b.CharterID,
		TripDate:           b.TripDate,
		Guests:             b.Guests,
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		Message:            b.Message,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(list []*domain.Booking) *BookingListResponse {
	bookings := make([]*BookingResponse, len(list))
	for i, b := range list {
		bookings[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: bookings, Total: len(bookings)}
}

// ToDomainBookingStatus parses a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, bool) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
		return domain.BookingStatus(s), true
	default:
		return "", false
	}
}

// ToDomainFilter converts the charter bookings request to the domain filter.
func (r *GetCharterBookingsRequest) ToDomainFilter() (domain.CharterBookingsFilter, bool) {
	filter := domain.CharterBookingsFilter{
		CharterID:       r.CharterID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, ok := ToDomainBookingStatus(*r.Status)
		if !ok {
			return domain.CharterBookingsFilter{}, false
		}
		filter.Status = &status
	}

	return filter, true
}
