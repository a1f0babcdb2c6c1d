package update_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/api/middleware"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/availability"
)

const (
	msgInvalidCharterID = "invalid charter ID"
	msgInvalidBody      = "invalid request body"
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

// Handle PUT /api/v1/charters/{charterId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	vars := mux.Vars(r)
	charterID, err := strconv.ParseInt(vars["charterId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /charters/{id}/availability - Invalid charter ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCharterID)
		return
	}

	var request UpsertRequest
	if err := handlers.DecodeJSON(r, &request); err != nil {
		h.logger.Warn("PUT /charters/{id}/availability - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req, err := request.ToServiceRequest(charterID)
	if err != nil {
		h.logger.Warn("PUT /charters/{id}/availability - Invalid entries: charter_id=%d, error=%v", charterID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	h.logger.Info("PUT /charters/{id}/availability - charter_id=%d, entries=%d, user_id=%d",
		charterID, len(req.Entries), userID)

	result, err := h.service.Upsert(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /charters/{id}/availability - Invalid request: charter_id=%d, error=%v", charterID, err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Error("PUT /charters/{id}/availability - Upsert failed: charter_id=%d, error=%v", charterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
