// Package bookings provides the read and status-transition surface of
// the booking subsystem. Cancellation lives in its own use case because
// it must touch the availability ledger transactionally; confirm and
// complete never touch the ledger.
package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/integrations/events"
	bookingRepo "github.com/Cris-Baez/CharteredCatch-sub000/internal/infra/storage/booking"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/bookings/models"
)

// Service provides booking reads and status transitions.
type Service struct {
	bookingRepo BookingRepository
	publisher   EventPublisher
	logger      Logger
}

// NewService creates the bookings service.
func NewService(bookingRepo BookingRepository, publisher EventPublisher, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetByID fetches a booking. The caller must be the booking's owner;
// captains read their bookings through the charter listing instead.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings fetches a user's booking history, optionally
// filtered by status.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, ok := models.ToDomainBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCharterBookings fetches a charter's bookings with optional period
// and status filters. Serves the captain's booking dashboard.
func (s *Service) GetCharterBookings(ctx context.Context, req *models.GetCharterBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCharterBookings: fetching bookings for charter=%d", req.CharterID)

	filter, ok := req.ToDomainFilter()
	if !ok {
		s.logger.Warn("GetCharterBookings: invalid filter for charter=%d", req.CharterID)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByCharterWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCharterBookings: repository error for charter=%d: %v", req.CharterID, err)
		return nil, fmt.Errorf("%w: GetCharterBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCharterBookings: fetched %d bookings for charter=%d", len(bookings), req.CharterID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus applies a captain's lifecycle transition: pending ->
// confirmed, or confirmed -> completed. Cancellation is rejected here;
// it goes through the cancellation use case so the ledger slot is
// released.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: booking=%d to status=%s by user=%d", bookingID, req.Status, req.UserID)

	status, ok := models.ToDomainBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking=%d", req.Status, bookingID)
		return ErrInvalidStatus
	}
	if status == domain.StatusCancelled || status == domain.StatusPending {
		s.logger.Warn("UpdateStatus: status=%s is not reachable via UpdateStatus", status)
		return ErrInvalidTransition
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: booking id=%d cannot move %s -> %s", bookingID, booking.Status, status)
		return ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d moved to status=%s", bookingID, status)

	booking.Status = status
	if err := s.publisher.Publish(events.RoutingKeyBookingStatusChanged, events.FromBooking(booking)); err != nil {
		s.logger.Warn("UpdateStatus: failed to publish status_changed for id=%d: %v", bookingID, err)
	}

	return nil
}
