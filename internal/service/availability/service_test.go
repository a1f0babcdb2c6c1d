package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/service/availability/models"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubLedgerRepo struct {
	available bool
	slots     []*domain.AvailabilitySlot
	upserted  []*domain.AvailabilitySlot
}

func (r *stubLedgerRepo) CheckAvailability(context.Context, int64, time.Time, int) (bool, error) {
	return r.available, nil
}

func (r *stubLedgerRepo) ListByCharter(context.Context, int64, *time.Time, *time.Time) ([]*domain.AvailabilitySlot, error) {
	return r.slots, nil
}

func (r *stubLedgerRepo) Upsert(_ context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	stored := *slot
	stored.ID = int64(len(r.upserted) + 1)
	r.upserted = append(r.upserted, &stored)
	return &stored, nil
}

var tripDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

func TestCheck(t *testing.T) {
	svc := NewService(&stubLedgerRepo{available: true}, nopLogger{})

	available, err := svc.Check(context.Background(), 7, tripDate, 1)

	require.NoError(t, err)
	assert.True(t, available)
}

func TestCheck_InvalidInput(t *testing.T) {
	svc := NewService(&stubLedgerRepo{}, nopLogger{})

	_, err := svc.Check(context.Background(), 0, tripDate, 1)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Check(context.Background(), 7, tripDate, 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Check(context.Background(), 7, time.Time{}, 1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_PeriodMustBeOrdered(t *testing.T) {
	svc := NewService(&stubLedgerRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListSlotsRequest{
		CharterID: 7,
		From:      ptr.Ptr(tripDate),
		To:        ptr.Ptr(tripDate.AddDate(0, 0, -5)),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpsert(t *testing.T) {
	repo := &stubLedgerRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Upsert(context.Background(), &models.UpsertSlotsRequest{
		CharterID: 7,
		Entries: []models.UpsertSlotEntry{
			{Date: tripDate, TotalSlots: 3},
			{Date: tripDate.AddDate(0, 0, 1), TotalSlots: 2},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, repo.upserted, 2)
	assert.Equal(t, int64(7), repo.upserted[0].CharterID)
	assert.Equal(t, 3, repo.upserted[0].TotalSlots)
}

func TestUpsert_Validation(t *testing.T) {
	manyEntries := make([]models.UpsertSlotEntry, domain.MaxAvailabilityWindowDays+1)
	for i := range manyEntries {
		manyEntries[i] = models.UpsertSlotEntry{Date: tripDate.AddDate(0, 0, i), TotalSlots: 1}
	}

	tests := []struct {
		name string
		req  *models.UpsertSlotsRequest
	}{
		{"zero charter", &models.UpsertSlotsRequest{
			Entries: []models.UpsertSlotEntry{{Date: tripDate, TotalSlots: 1}},
		}},
		{"no entries", &models.UpsertSlotsRequest{CharterID: 7}},
		{"window too large", &models.UpsertSlotsRequest{CharterID: 7, Entries: manyEntries}},
		{"zero capacity", &models.UpsertSlotsRequest{
			CharterID: 7,
			Entries:   []models.UpsertSlotEntry{{Date: tripDate, TotalSlots: 0}},
		}},
		{"capacity above maximum", &models.UpsertSlotsRequest{
			CharterID: 7,
			Entries:   []models.UpsertSlotEntry{{Date: tripDate, TotalSlots: domain.MaxTotalSlots + 1}},
		}},
		{"duplicate date", &models.UpsertSlotsRequest{
			CharterID: 7,
			Entries: []models.UpsertSlotEntry{
				{Date: tripDate, TotalSlots: 2},
				{Date: tripDate.Add(6 * time.Hour), TotalSlots: 3},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubLedgerRepo{}
			svc := NewService(repo, nopLogger{})

			_, err := svc.Upsert(context.Background(), tt.req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.upserted)
		})
	}
}
