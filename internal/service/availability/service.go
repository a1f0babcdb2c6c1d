// Package availability provides the read and management surface of the
// availability ledger: the pure capacity check, the calendar listing,
// and the captain's seeding of bookable dates. Capacity consumption
// never happens here; that is the booking coordinator's job.
package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/availability/models"
)

// Service manages the availability ledger.
type Service struct {
	ledgerRepo LedgerRepository
	logger     Logger
}

// NewService creates the availability service.
func NewService(ledgerRepo LedgerRepository, logger Logger) *Service {
	return &Service{ledgerRepo: ledgerRepo, logger: logger}
}

// Check reports whether requestedSlots fit on the charter's date. Runs
// outside any transaction, so the answer is advisory by nature: a
// booking may still fail a moment later, and only the coordinator's
// conditional update decides.
func (s *Service) Check(ctx context.Context, charterID int64, date time.Time, requestedSlots int) (bool, error) {
	if charterID <= 0 {
		return false, fmt.Errorf("%w: charterID must be positive", ErrInvalidInput)
	}
	if requestedSlots < 1 {
		return false, fmt.Errorf("%w: requestedSlots must be at least 1", ErrInvalidInput)
	}
	if date.IsZero() {
		return false, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	available, err := s.ledgerRepo.CheckAvailability(ctx, charterID, date, requestedSlots)
	if err != nil {
		s.logger.Error("Check: repository error for charter=%d: %v", charterID, err)
		return false, fmt.Errorf("%w: Check - repository error: %v", ErrInternal, err)
	}

	return available, nil
}

// List returns the charter's ledger rows, optionally bounded by dates.
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	if req.CharterID <= 0 {
		return nil, fmt.Errorf("%w: charterID must be positive", ErrInvalidInput)
	}
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return nil, fmt.Errorf("%w: to must not precede from", ErrInvalidInput)
	}

	slots, err := s.ledgerRepo.ListByCharter(ctx, req.CharterID, req.From, req.To)
	if err != nil {
		s.logger.Error("List: repository error for charter=%d: %v", req.CharterID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// Upsert seeds or resizes ledger rows for the charter, typically for a
// rolling window of future dates. Existing rows keep their booked
// count; total capacity never shrinks below it.
func (s *Service) Upsert(ctx context.Context, req *models.UpsertSlotsRequest) (*models.SlotListResponse, error) {
	if err := validateUpsert(req); err != nil {
		s.logger.Warn("Upsert: validation failed for charter=%d: %v", req.CharterID, err)
		return nil, err
	}

	updated := make([]*domain.AvailabilitySlot, 0, len(req.Entries))
	for _, entry := range req.Entries {
		slot, err := s.ledgerRepo.Upsert(ctx, &domain.AvailabilitySlot{
			CharterID:  req.CharterID,
			Date:       entry.Date,
			TotalSlots: entry.TotalSlots,
		})
		if err != nil {
			s.logger.Error("Upsert: repository error for charter=%d date=%s: %v",
				req.CharterID, entry.Date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
		}
		updated = append(updated, slot)
	}

	s.logger.Info("Upsert: charter=%d updated %d ledger rows", req.CharterID, len(updated))
	return models.FromDomainSlotList(updated), nil
}

func validateUpsert(req *models.UpsertSlotsRequest) error {
	if req.CharterID <= 0 {
		return fmt.Errorf("%w: charterID must be positive", ErrInvalidInput)
	}
	if len(req.Entries) == 0 {
		return fmt.Errorf("%w: at least one entry is required", ErrInvalidInput)
	}
	if len(req.Entries) > domain.MaxAvailabilityWindowDays {
		return fmt.Errorf("%w: at most %d entries per request", ErrInvalidInput, domain.MaxAvailabilityWindowDays)
	}

	seen := make(map[time.Time]struct{}, len(req.Entries))
	for _, entry := range req.Entries {
		if entry.Date.IsZero() {
			return fmt.Errorf("%w: entry date is required", ErrInvalidInput)
		}
		if entry.TotalSlots < domain.MinTotalSlots || entry.TotalSlots > domain.MaxTotalSlots {
			return fmt.Errorf("%w: totalSlots must be between %d and %d",
				ErrInvalidInput, domain.MinTotalSlots, domain.MaxTotalSlots)
		}
		day := domain.NormalizeDate(entry.Date)
		if _, dup := seen[day]; dup {
			return fmt.Errorf("%w: duplicate date %s", ErrInvalidInput, day.Format(domain.DateFormat))
		}
		seen[day] = struct{}{}
	}

	return nil
}
