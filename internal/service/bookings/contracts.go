package bookings

import (
	"context"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
)

// BookingRepository is the storage surface the service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByCharterWithFilter(ctx context.Context, filter domain.CharterBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// EventPublisher emits booking lifecycle events.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// Logger is the logging surface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
