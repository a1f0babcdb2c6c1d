package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/integrations/events"
	bookingRepo "github.com/Cris-Baez/CharteredCatch-sub000/internal/infra/storage/booking"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/bookings/models"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubRepo struct {
	booking        *domain.Booking
	byUser         []*domain.Booking
	byCharter      []*domain.Booking
	gotFilter      *domain.CharterBookingsFilter
	updatedStatus  *domain.BookingStatus
}

func (r *stubRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if r.booking == nil || r.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *r.booking
	return &copied, nil
}

func (r *stubRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return r.byUser, nil
}

func (r *stubRepo) GetByCharterWithFilter(_ context.Context, filter domain.CharterBookingsFilter) ([]*domain.Booking, error) {
	r.gotFilter = &filter
	return r.byCharter, nil
}

func (r *stubRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	r.updatedStatus = &status
	return nil
}

type capturingPublisher struct {
	keys []string
}

func (p *capturingPublisher) Publish(routingKey string, _ any) error {
	p.keys = append(p.keys, routingKey)
	return nil
}

func sampleBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        11,
		Reference: uuid.New(),
		UserID:    42,
		CharterID: 7,
		TripDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Guests:    4,
		Status:    status,
	}
}

func TestGetByID_OwnerOnly(t *testing.T) {
	repo := &stubRepo{booking: sampleBooking(domain.StatusConfirmed)}
	svc := NewService(repo, &capturingPublisher{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 11, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)

	_, err = svc.GetByID(context.Background(), 11, 1000)
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 99, 42)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&stubRepo{}, &capturingPublisher{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("sailed-away"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCharterBookings_BuildsFilter(t *testing.T) {
	repo := &stubRepo{byCharter: []*domain.Booking{sampleBooking(domain.StatusConfirmed)}}
	svc := NewService(repo, &capturingPublisher{}, nopLogger{})

	resp, err := svc.GetCharterBookings(context.Background(), &models.GetCharterBookingsRequest{
		CharterID: 7,
		StartDate: ptr.Ptr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		Status:    ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.gotFilter)
	assert.Equal(t, int64(7), repo.gotFilter.CharterID)
	require.NotNil(t, repo.gotFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.gotFilter.Status)
}

func TestUpdateStatus_ConfirmPending(t *testing.T) {
	repo := &stubRepo{booking: sampleBooking(domain.StatusPending)}
	publisher := &capturingPublisher{}
	svc := NewService(repo, publisher, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 11, &models.UpdateStatusRequest{
		UserID: 7,
		Status: "confirmed",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
	assert.Equal(t, []string{events.RoutingKeyBookingStatusChanged}, publisher.keys)
}

func TestUpdateStatus_CancellationGoesElsewhere(t *testing.T) {
	// Cancelling through UpdateStatus would skip the ledger release.
	repo := &stubRepo{booking: sampleBooking(domain.StatusPending)}
	svc := NewService(repo, &capturingPublisher{}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 11, &models.UpdateStatusRequest{
		UserID: 7,
		Status: "cancelled",
	})

	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, repo.updatedStatus)
}

func TestUpdateStatus_RejectsIllegalTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{"complete a pending booking", domain.StatusPending, "completed", ErrInvalidTransition},
		{"confirm twice", domain.StatusConfirmed, "confirmed", ErrInvalidTransition},
		{"revive a cancelled booking", domain.StatusCancelled, "confirmed", ErrInvalidTransition},
		{"unknown status", domain.StatusPending, "drifting", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{booking: sampleBooking(tt.from)}
			svc := NewService(repo, &capturingPublisher{}, nopLogger{})

			err := svc.UpdateStatus(context.Background(), 11, &models.UpdateStatusRequest{
				UserID: 7,
				Status: tt.to,
			})

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
