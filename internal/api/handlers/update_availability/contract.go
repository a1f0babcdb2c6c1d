package update_availability

import (
	"context"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/availability/models"
)

type AvailabilityService interface {
	Upsert(ctx context.Context, req *models.UpsertSlotsRequest) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
