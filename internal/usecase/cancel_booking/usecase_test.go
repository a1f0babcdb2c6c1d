package cancel_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/integrations/events"
	availabilityRepo "github.com/Cris-Baez/CharteredCatch-sub000/internal/infra/storage/availability"
	bookingRepo "github.com/Cris-Baez/CharteredCatch-sub000/internal/infra/storage/booking"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passthroughTxManager struct{ err error }

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type stubBookingRepo struct {
	booking   *domain.Booking
	cancelled []int64
	reasons   []string
}

func (r *stubBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if r.booking == nil || r.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *r.booking
	return &copied, nil
}

func (r *stubBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	r.cancelled = append(r.cancelled, id)
	r.reasons = append(r.reasons, reason)
	return nil
}

type stubLedgerRepo struct {
	bookedSlots int
	releaseErr  error
	released    int
}

func (r *stubLedgerRepo) Release(_ context.Context, _ int64, _ time.Time, slotsToRelease int) error {
	if r.releaseErr != nil {
		return r.releaseErr
	}
	r.released += slotsToRelease
	r.bookedSlots -= slotsToRelease
	if r.bookedSlots < 0 {
		r.bookedSlots = 0
	}
	return nil
}

type capturingPublisher struct {
	keys []string
}

func (p *capturingPublisher) Publish(routingKey string, _ any) error {
	p.keys = append(p.keys, routingKey)
	return nil
}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:        11,
		Reference: uuid.New(),
		UserID:    42,
		CharterID: 7,
		TripDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Guests:    4,
		Status:    domain.StatusConfirmed,
	}
}

func TestExecute_ReleasesLedgerSlot(t *testing.T) {
	bookings := &stubBookingRepo{booking: confirmedBooking()}
	ledger := &stubLedgerRepo{bookedSlots: 3}
	publisher := &capturingPublisher{}
	uc := NewUseCase(bookings, ledger, &passthroughTxManager{}, publisher, nopLogger{})

	err := uc.Execute(context.Background(), 11, &Request{UserID: 42, CancellationReason: "weather"})

	require.NoError(t, err)
	assert.Equal(t, []int64{11}, bookings.cancelled)
	assert.Equal(t, []string{"weather"}, bookings.reasons)
	assert.Equal(t, domain.SlotsPerBooking, ledger.released)
	assert.Equal(t, 2, ledger.bookedSlots)
	assert.Equal(t, []string{events.RoutingKeyBookingCancelled}, publisher.keys)
}

func TestExecute_MissingLedgerRowIsTolerated(t *testing.T) {
	// Nothing to release: the date's ledger row may have been removed
	// after the trip. Cancellation still succeeds.
	bookings := &stubBookingRepo{booking: confirmedBooking()}
	ledger := &stubLedgerRepo{releaseErr: availabilityRepo.ErrSlotNotFound}
	uc := NewUseCase(bookings, ledger, &passthroughTxManager{}, &capturingPublisher{}, nopLogger{})

	err := uc.Execute(context.Background(), 11, &Request{UserID: 42})

	require.NoError(t, err)
	assert.Equal(t, []int64{11}, bookings.cancelled)
}

func TestExecute_ReleaseFailureAbortsCancellation(t *testing.T) {
	bookings := &stubBookingRepo{booking: confirmedBooking()}
	ledger := &stubLedgerRepo{releaseErr: errors.New("connection reset")}
	uc := NewUseCase(bookings, ledger, &passthroughTxManager{}, &capturingPublisher{}, nopLogger{})

	err := uc.Execute(context.Background(), 11, &Request{UserID: 42})

	require.ErrorIs(t, err, ErrInternal)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubLedgerRepo{}, &passthroughTxManager{}, &capturingPublisher{}, nopLogger{})

	err := uc.Execute(context.Background(), 99, &Request{UserID: 42})

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	bookings := &stubBookingRepo{booking: confirmedBooking()}
	ledger := &stubLedgerRepo{}
	uc := NewUseCase(bookings, ledger, &passthroughTxManager{}, &capturingPublisher{}, nopLogger{})

	err := uc.Execute(context.Background(), 11, &Request{UserID: 1000})

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, bookings.cancelled)
	assert.Zero(t, ledger.released)
}

func TestExecute_StatusNotCancellable(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			booking := confirmedBooking()
			booking.Status = status
			bookings := &stubBookingRepo{booking: booking}
			ledger := &stubLedgerRepo{bookedSlots: 2}
			uc := NewUseCase(bookings, ledger, &passthroughTxManager{}, &capturingPublisher{}, nopLogger{})

			err := uc.Execute(context.Background(), 11, &Request{UserID: 42})

			require.ErrorIs(t, err, ErrCannotCancel)
			assert.Zero(t, ledger.released, "a non-cancellable booking must not touch the ledger")
		})
	}
}

func TestExecute_ContentionMapped(t *testing.T) {
	for _, txErr := range []error{txmanager.ErrLockTimeout, txmanager.ErrSerializationFailure} {
		uc := NewUseCase(
			&stubBookingRepo{booking: confirmedBooking()},
			&stubLedgerRepo{},
			&passthroughTxManager{err: txErr},
			&capturingPublisher{},
			nopLogger{},
		)

		err := uc.Execute(context.Background(), 11, &Request{UserID: 42})

		require.ErrorIs(t, err, ErrContention)
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubLedgerRepo{}, &passthroughTxManager{}, &capturingPublisher{}, nopLogger{})

	err := uc.Execute(context.Background(), 0, &Request{UserID: 42})
	require.ErrorIs(t, err, ErrInvalidInput)

	err = uc.Execute(context.Background(), 11, &Request{UserID: -5})
	require.ErrorIs(t, err, ErrInvalidInput)
}
