package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/availability"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/availability/models"
)

const (
	msgInvalidCharterID = "invalid charter ID"
	msgInvalidPeriod    = "invalid period"
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

// Handle GET /api/v1/charters/{charterId}/availability?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	charterID, err := strconv.ParseInt(vars["charterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /charters/{id}/availability - Invalid charter ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCharterID)
		return
	}

	req := &models.ListSlotsRequest{CharterID: charterID}
	query := r.URL.Query()

	if from := query.Get("from"); from != "" {
		start, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			h.logger.Warn("GET /charters/{id}/availability - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		req.From = &start
	}

	if to := query.Get("to"); to != "" {
		end, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			h.logger.Warn("GET /charters/{id}/availability - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		req.To = &end
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /charters/{id}/availability - Invalid request: charter_id=%d, error=%v", charterID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /charters/{id}/availability - Failed to list slots: charter_id=%d, error=%v", charterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
