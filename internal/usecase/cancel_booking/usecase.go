// Package cancel_booking implements the symmetric counterpart of the
// booking coordinator: flipping a booking to cancelled and returning
// its slot to the availability ledger inside one transaction, so a
// cancel/rebook race cannot corrupt the capacity count.
package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/integrations/events"
	availabilityRepo "github.com/Cris-Baez/CharteredCatch-sub000/internal/infra/storage/availability"
	bookingRepo "github.com/Cris-Baez/CharteredCatch-sub000/internal/infra/storage/booking"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/txmanager"
)

// UseCase cancels bookings and releases their ledger slots.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	publisher        EventPublisher
	logger           Logger
}

// NewUseCase creates the cancellation use case.
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
		logger:           logger,
	}
}

// Execute cancels a booking. The booking row is read FOR UPDATE, the
// status flips to cancelled and the ledger slot is released, all in one
// serializable transaction. The release decrements by exactly the
// amount the booking consumed at creation.
func (uc *UseCase) Execute(ctx context.Context, bookingID int64, req *Request) error {
	uc.logger.Info("CancelBooking: booking=%d by user=%d", bookingID, req.UserID)

	if bookingID <= 0 || req.UserID <= 0 {
		return fmt.Errorf("%w: bookingID and userID must be positive", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var cancelled *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: get booking: %v", ErrInternal, err)
		}

		if booking.UserID != req.UserID {
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			return ErrCannotCancel
		}

		if err := uc.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: cancel booking: %v", ErrInternal, err)
		}

		// Return the slot the booking consumed. A missing ledger row is
		// tolerated: there is nothing to release and the decrement is
		// floored at zero anyway.
		err = uc.availabilityRepo.Release(txCtx, booking.CharterID, booking.TripDate, domain.SlotsPerBooking)
		if err != nil && !errors.Is(err, availabilityRepo.ErrSlotNotFound) {
			uc.logger.Error("CancelBooking: failed to release slot for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: release slot: %v", ErrInternal, err)
		}
		if errors.Is(err, availabilityRepo.ErrSlotNotFound) {
			uc.logger.Warn("CancelBooking: no ledger row for charter=%d date=%s, nothing to release",
				booking.CharterID, booking.TripDate.Format(domain.DateFormat))
		}

		booking.Status = domain.StatusCancelled
		booking.CancellationReason = &req.CancellationReason
		cancelled = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound),
			errors.Is(err, ErrAccessDenied),
			errors.Is(err, ErrCannotCancel):
			uc.logger.Warn("CancelBooking: booking=%d rejected: %v", bookingID, err)
			return err

		case errors.Is(err, txmanager.ErrLockTimeout), errors.Is(err, txmanager.ErrSerializationFailure):
			uc.logger.Warn("CancelBooking: contention on booking=%d: %v", bookingID, err)
			return fmt.Errorf("%w: %v", ErrContention, err)

		default:
			return err
		}
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d", bookingID)

	if err := uc.publisher.Publish(events.RoutingKeyBookingCancelled, events.FromBooking(cancelled)); err != nil {
		uc.logger.Warn("CancelBooking: failed to publish booking.cancelled for id=%d: %v", bookingID, err)
	}

	return nil
}
