package get_availability

import (
	"context"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/availability/models"
)

type AvailabilityService interface {
	List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
