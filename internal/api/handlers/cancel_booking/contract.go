package cancel_booking

import (
	"context"

	cancelBooking "github.com/Cris-Baez/CharteredCatch-sub000/internal/usecase/cancel_booking"
)

type CancelBookingUseCase interface {
	Execute(ctx context.Context, bookingID int64, req *cancelBooking.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
