package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/availability"
)

const (
	msgInvalidCharterID = "invalid charter ID"
	msgInvalidDate      = "invalid date"
	msgInvalidSlots     = "invalid slots"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/charters/{charterId}/availability/check?date=&slots=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	charterID, err := strconv.ParseInt(vars["charterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /charters/{id}/availability/check - Invalid charter ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCharterID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /charters/{id}/availability/check - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots := 1
	if raw := query.Get("slots"); raw != "" {
		slots, err = strconv.Atoi(raw)
		if err != nil || slots < 1 {
			h.logger.Warn("GET /charters/{id}/availability/check - Invalid slots: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidSlots)
			return
		}
	}

	available, err := h.service.Check(r.Context(), charterID, date, slots)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /charters/{id}/availability/check - Invalid request: charter_id=%d, error=%v", charterID, err)
			handlers.RespondBadRequest(w, msgInvalidSlots)

		default:
			h.logger.Error("GET /charters/{id}/availability/check - Check failed: charter_id=%d, error=%v", charterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CheckResponse{
		CharterID: charterID,
		Date:      date.Format(domain.DateFormat),
		Slots:     slots,
		Available: available,
	})
}
