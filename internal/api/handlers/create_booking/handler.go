package create_booking

import (
	"errors"
	"net/http"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/api/middleware"
	bookTrip "github.com/Cris-Baez/CharteredCatch-sub000/internal/usecase/book_trip"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid trip date, expected YYYY-MM-DD"
	msgNoAvailability     = "no availability for the requested date"
	msgContention         = "booking contention, please retry"
	msgInvalidBooking     = "invalid booking request"
)

type Handler struct {
	useCase BookTripUseCase
	logger  Logger
}

func NewHandler(useCase BookTripUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse trip date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookTrip.ErrNoAvailability):
			h.logger.Warn("POST /bookings - No availability: user_id=%d, charter_id=%d", userID, req.CharterID)
			handlers.RespondConflict(w, msgNoAvailability)

		case errors.Is(err, bookTrip.ErrContention):
			h.logger.Warn("POST /bookings - Contention: user_id=%d, charter_id=%d", userID, req.CharterID)
			handlers.RespondServiceUnavailable(w, msgContention)

		case errors.Is(err, bookTrip.ErrInvalidInput), errors.Is(err, bookTrip.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid request: user_id=%d, charter_id=%d, error=%v",
				userID, req.CharterID, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, charter_id=%d, error=%v",
				userID, req.CharterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, charter_id=%d",
		result.ID, userID, req.CharterID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
