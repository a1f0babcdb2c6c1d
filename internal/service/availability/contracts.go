package availability

import (
	"context"
	"time"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
)

// LedgerRepository is the storage surface the service needs.
type LedgerRepository interface {
	CheckAvailability(ctx context.Context, charterID int64, date time.Time, requestedSlots int) (bool, error)
	ListByCharter(ctx context.Context, charterID int64, from, to *time.Time) ([]*domain.AvailabilitySlot, error)
	Upsert(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error)
}

// Logger is the logging surface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
