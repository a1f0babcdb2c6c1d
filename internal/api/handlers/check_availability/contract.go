package check_availability

import (
	"context"
	"time"
)

type AvailabilityService interface {
	Check(ctx context.Context, charterID int64, date time.Time, requestedSlots int) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
