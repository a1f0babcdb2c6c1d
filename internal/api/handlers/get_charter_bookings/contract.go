package get_charter_bookings

import (
	"context"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/bookings/models"
)

type BookingService interface {
	GetCharterBookings(ctx context.Context, req *models.GetCharterBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
