// Package book_trip implements the booking coordinator: the atomic
// check-create-reserve sequence that decides whether a trip slot can be
// booked without ever overselling a date.
package book_trip

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/integrations/events"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/txmanager"
)

// UseCase coordinates booking creation.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	publisher        EventPublisher
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the booking coordinator.
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		publisher:        publisher,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute books a trip slot. The advisory availability check, the
// booking insert and the conditional slot reservation run inside one
// serializable transaction: when two callers race for the last slot,
// exactly one commits and the loser's insert is rolled back with the
// rest of its transaction. Each booking consumes one ledger slot
// regardless of guest count.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookTrip: user=%d, charter=%d, date=%s, guests=%d, price=%.2f",
		req.UserID, req.CharterID, req.TripDate.Format(domain.DateFormat), req.Guests, req.TotalPrice)

	// 1. Validate the request.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookTrip: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	tripDate := domain.NormalizeDate(req.TripDate)

	// 2. Reject trips in the past.
	if err := validateDate(tripDate, now); err != nil {
		uc.logger.Warn("BookTrip: date validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Run check -> insert -> reserve as one atomic scope.
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Advisory availability check. Reads the ledger row FOR
		// UPDATE inside the transaction; still only advisory — the
		// conditional update below is what prevents overselling.
		available, err := uc.availabilityRepo.CheckAvailability(txCtx, req.CharterID, tripDate, domain.SlotsPerBooking)
		if err != nil {
			uc.logger.Error("BookTrip: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}
		if !available {
			return ErrNoAvailability
		}

		// 3.2. Insert the booking as pending. Rolled back with the
		// transaction if the reservation below loses the race.
		booking := &domain.Booking{
			Reference:  uuid.New(),
			UserID:     req.UserID,
			CharterID:  req.CharterID,
			TripDate:   tripDate,
			Guests:     req.Guests,
			TotalPrice: req.TotalPrice,
			Status:     domain.StatusPending,
			Message:    req.Message,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("BookTrip: failed to create booking: %v", err)
			return fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}

		// 3.3. Authoritative conditional reservation. Zero rows
		// matched means a concurrent winner took the capacity between
		// check and write; abort the whole transaction.
		reserved, err := uc.availabilityRepo.Reserve(txCtx, req.CharterID, tripDate, domain.SlotsPerBooking)
		if err != nil {
			uc.logger.Error("BookTrip: slot reservation failed: %v", err)
			return fmt.Errorf("%w: reserve slot: %v", ErrInternal, err)
		}
		if !reserved {
			return ErrNoAvailability
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrNoAvailability):
			uc.logger.Warn("BookTrip: no availability for charter=%d date=%s",
				req.CharterID, tripDate.Format(domain.DateFormat))
			return nil, ErrNoAvailability

		case errors.Is(err, txmanager.ErrLockTimeout), errors.Is(err, txmanager.ErrSerializationFailure):
			uc.logger.Warn("BookTrip: contention on charter=%d date=%s: %v",
				req.CharterID, tripDate.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: %v", ErrContention, err)

		default:
			return nil, err
		}
	}

	uc.logger.Info("BookTrip: successfully created booking id=%d reference=%s", result.ID, result.Reference)

	// 4. Emit the lifecycle event after commit; delivery failures must
	// not fail an already-committed booking.
	if err := uc.publisher.Publish(events.RoutingKeyBookingCreated, events.FromBooking(result)); err != nil {
		uc.logger.Warn("BookTrip: failed to publish booking.created for id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:         result.ID,
		Reference:  result.Reference,
		UserID:     result.UserID,
		CharterID:  result.CharterID,
		TripDate:   result.TripDate,
		Guests:     result.Guests,
		TotalPrice: result.TotalPrice,
		Status:     string(result.Status),
		Message:    result.Message,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
