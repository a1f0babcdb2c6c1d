package create_booking

import (
	"context"

	bookTrip "github.com/Cris-Baez/CharteredCatch-sub000/internal/usecase/book_trip"
)

type BookTripUseCase interface {
	Execute(ctx context.Context, req *bookTrip.Request) (*bookTrip.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
