package cancel_booking

import (
	"context"
	"time"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
)

// BookingRepository is the booking storage surface the use case needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// AvailabilityRepository is the ledger surface the use case needs.
type AvailabilityRepository interface {
	Release(ctx context.Context, charterID int64, date time.Time, slotsToRelease int) error
}

// TransactionManager wraps the status flip and the ledger release in
// one atomic scope.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher emits booking lifecycle events.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// Logger is the logging surface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
