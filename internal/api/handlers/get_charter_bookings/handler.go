package get_charter_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/bookings"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/bookings/models"
)

const (
	msgInvalidCharterID = "invalid charter ID"
	msgInvalidFilter    = "invalid filter"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/charters/{charterId}/bookings?from=&to=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	charterID, err := strconv.ParseInt(vars["charterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /charters/{id}/bookings - Invalid charter ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCharterID)
		return
	}

	req, err := parseFilter(charterID, r)
	if err != nil {
		h.logger.Warn("GET /charters/{id}/bookings - Invalid filter: charter_id=%d, error=%v", charterID, err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.GetCharterBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /charters/{id}/bookings - Invalid filter: charter_id=%d, error=%v", charterID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /charters/{id}/bookings - Failed to fetch bookings: charter_id=%d, error=%v", charterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

func parseFilter(charterID int64, r *http.Request) (*models.GetCharterBookingsRequest, error) {
	req := &models.GetCharterBookingsRequest{CharterID: charterID}
	query := r.URL.Query()

	if from := query.Get("from"); from != "" {
		start, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
	}

	if to := query.Get("to"); to != "" {
		end, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			return nil, err
		}
		req.EndDate = &end
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
