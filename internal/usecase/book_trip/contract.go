package book_trip

import (
	"context"
	"time"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
)

// BookingRepository is the booking storage surface the coordinator needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AvailabilityRepository is the ledger surface the coordinator needs.
type AvailabilityRepository interface {
	CheckAvailability(ctx context.Context, charterID int64, date time.Time, requestedSlots int) (bool, error)
	Reserve(ctx context.Context, charterID int64, date time.Time, slotsToConsume int) (bool, error)
}

// TransactionManager wraps the check-create-reserve sequence in one
// atomic scope.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher emits booking lifecycle events.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
