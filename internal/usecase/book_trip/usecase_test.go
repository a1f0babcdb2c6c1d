package book_trip

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/internal/integrations/events"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (t fixedTime) Now() time.Time { return t.now }

// ledgerState is the shared in-memory stand-in for the availability
// and bookings tables. Access is serialized by stubTxManager, which
// plays the role of the database's transaction isolation.
type ledgerState struct {
	mu          sync.Mutex
	totalSlots  int
	bookedSlots int
	bookings    []*domain.Booking
	nextID      int64
}

// stubTxManager serializes transaction bodies over the shared state and
// restores the pre-transaction snapshot when the body fails, the way a
// rolled-back database transaction would.
type stubTxManager struct{ state *ledgerState }

func (m *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.state.mu.Lock()
	defer m.state.mu.Unlock()

	bookedSnapshot := m.state.bookedSlots
	bookingsSnapshot := len(m.state.bookings)

	if err := fn(ctx); err != nil {
		m.state.bookedSlots = bookedSnapshot
		m.state.bookings = m.state.bookings[:bookingsSnapshot]
		return err
	}
	return nil
}

type stubBookingRepo struct{ state *ledgerState }

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.state.nextID++
	created := *booking
	created.ID = r.state.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.state.bookings = append(r.state.bookings, &created)
	return &created, nil
}

type stubLedgerRepo struct {
	state       *ledgerState
	checkFunc   func() (bool, error)
	reserveFunc func() (bool, error)
}

func (r *stubLedgerRepo) CheckAvailability(_ context.Context, _ int64, _ time.Time, requestedSlots int) (bool, error) {
	if r.checkFunc != nil {
		return r.checkFunc()
	}
	return r.state.bookedSlots+requestedSlots <= r.state.totalSlots, nil
}

func (r *stubLedgerRepo) Reserve(_ context.Context, _ int64, _ time.Time, slotsToConsume int) (bool, error) {
	if r.reserveFunc != nil {
		return r.reserveFunc()
	}
	if r.state.bookedSlots+slotsToConsume > r.state.totalSlots {
		return false, nil
	}
	r.state.bookedSlots += slotsToConsume
	return true, nil
}

type capturingPublisher struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (p *capturingPublisher) Publish(routingKey string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	return p.err
}

func newTestUseCase(state *ledgerState, publisher *capturingPublisher) *UseCase {
	return NewUseCase(
		&stubBookingRepo{state: state},
		&stubLedgerRepo{state: state},
		&stubTxManager{state: state},
		publisher,
		nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		UserID:     42,
		CharterID:  7,
		TripDate:   time.Now().AddDate(0, 0, 14),
		Guests:     4,
		TotalPrice: 650.00,
	}
}

func TestExecute_Success(t *testing.T) {
	state := &ledgerState{totalSlots: 4, bookedSlots: 1}
	publisher := &capturingPublisher{}
	uc := newTestUseCase(state, publisher)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, int64(7), resp.CharterID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", resp.Reference.String())

	assert.Equal(t, 2, state.bookedSlots)
	require.Len(t, state.bookings, 1)
	assert.Equal(t, []string{events.RoutingKeyBookingCreated}, publisher.keys)
}

func TestExecute_ConsumesOneSlotRegardlessOfGuests(t *testing.T) {
	state := &ledgerState{totalSlots: 3}
	uc := newTestUseCase(state, &capturingPublisher{})

	req := validRequest()
	req.Guests = domain.MaxGuests

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.SlotsPerBooking, state.bookedSlots)
}

func TestExecute_NoAvailability(t *testing.T) {
	state := &ledgerState{totalSlots: 2, bookedSlots: 2}
	publisher := &capturingPublisher{}
	uc := newTestUseCase(state, publisher)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrNoAvailability)
	assert.Nil(t, resp)
	assert.Empty(t, state.bookings)
	assert.Empty(t, publisher.keys)
}

func TestExecute_ReservationLossRollsBackBooking(t *testing.T) {
	// The advisory check passes but the conditional update matches zero
	// rows, as when a concurrent winner took the capacity in between.
	// The inserted booking must vanish with the transaction.
	state := &ledgerState{totalSlots: 1}
	uc := NewUseCase(
		&stubBookingRepo{state: state},
		&stubLedgerRepo{
			state:       state,
			checkFunc:   func() (bool, error) { return true, nil },
			reserveFunc: func() (bool, error) { return false, nil },
		},
		&stubTxManager{state: state},
		&capturingPublisher{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrNoAvailability)
	assert.Empty(t, state.bookings, "losing booking must be rolled back, not left pending")
	assert.Equal(t, 0, state.bookedSlots)
}

func TestExecute_TwoRacersForLastSlot(t *testing.T) {
	state := &ledgerState{totalSlots: 1}
	uc := newTestUseCase(state, &capturingPublisher{})

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrNoAvailability):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins, "exactly one racer must win the last slot")
	assert.Equal(t, 1, losses)
	assert.Equal(t, 1, state.bookedSlots)
	assert.Len(t, state.bookings, 1)
}

func TestExecute_CapacityNeverOversold(t *testing.T) {
	const capacity = 3
	const racers = 8

	state := &ledgerState{totalSlots: capacity}
	uc := newTestUseCase(state, &capturingPublisher{})

	results := make(chan error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins int
	for err := range results {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, ErrNoAvailability)
		}
	}

	assert.Equal(t, capacity, wins)
	assert.Equal(t, capacity, state.bookedSlots)
	assert.Len(t, state.bookings, capacity)
}

type failingTxManager struct{ err error }

func (m *failingTxManager) DoSerializable(context.Context, func(ctx context.Context) error) error {
	return m.err
}

func TestExecute_ContentionIsDistinctFromInternalError(t *testing.T) {
	tests := []struct {
		name    string
		txErr   error
		wantErr error
	}{
		{"lock timeout", txmanager.ErrLockTimeout, ErrContention},
		{"serialization failure exhausted retries", txmanager.ErrSerializationFailure, ErrContention},
		{"unexpected failure stays internal", errors.New("connection reset"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &ledgerState{totalSlots: 5}
			uc := NewUseCase(
				&stubBookingRepo{state: state},
				&stubLedgerRepo{state: state},
				&failingTxManager{err: tt.txErr},
				&capturingPublisher{},
				nopLogger{},
			)

			_, err := uc.Execute(context.Background(), validRequest())

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NotErrorIs(t, err, ErrContention)
				assert.NotErrorIs(t, err, ErrNoAvailability)
			}
		})
	}
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }, ErrInvalidInput},
		{"negative charter", func(r *Request) { r.CharterID = -1 }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.TripDate = time.Time{} }, ErrInvalidInput},
		{"too few guests", func(r *Request) { r.Guests = 0 }, ErrInvalidInput},
		{"too many guests", func(r *Request) { r.Guests = domain.MaxGuests + 1 }, ErrInvalidInput},
		{"negative price", func(r *Request) { r.TotalPrice = -1 }, ErrInvalidInput},
		{"past date", func(r *Request) { r.TripDate = time.Now().AddDate(0, 0, -1) }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &ledgerState{totalSlots: 5}
			uc := newTestUseCase(state, &capturingPublisher{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, state.bookings)
		})
	}
}

func TestExecute_SameDayBookingAllowed(t *testing.T) {
	state := &ledgerState{totalSlots: 1}
	uc := newTestUseCase(state, &capturingPublisher{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 6, 15, 18, 30, 0, 0, time.UTC)}

	req := validRequest()
	req.TripDate = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_PublishFailureDoesNotFailBooking(t *testing.T) {
	state := &ledgerState{totalSlots: 2}
	publisher := &capturingPublisher{err: errors.New("broker unreachable")}
	uc := newTestUseCase(state, publisher)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 1, state.bookedSlots)
}
