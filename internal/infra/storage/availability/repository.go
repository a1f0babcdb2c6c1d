// Package availability implements the availability ledger: one row per
// charter per date, tracking total versus booked slots. All capacity
// mutations go through the conditional Reserve and Release operations;
// the advisory read in CheckAvailability never authorizes a write on
// its own.
package availability

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/domain"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/dbmetrics"
	"github.com/Cris-Baez/CharteredCatch-sub000/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"charter_id",
	"date",
	"total_slots",
	"booked_slots",
	"created_at",
	"updated_at",
}

// Repository provides access to the availability ledger.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an availability ledger repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCharterAndDate fetches the ledger row for (charterID, date).
// Inside a transaction the row is read FOR UPDATE so the check and the
// conditional write that follows share one isolation scope.
func (r *Repository) GetByCharterAndDate(ctx context.Context, charterID int64, date time.Time) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{"charter_id": charterID, "date": domain.NormalizeDate(date)})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCharterAndDate - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := r.scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCharterAndDate - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// CheckAvailability reports whether the ledger row for (charterID,
// date) has at least requestedSlots free. A missing row reads as not
// available, never as an error. The result is advisory: only the
// conditional update in Reserve is authoritative under concurrency.
func (r *Repository) CheckAvailability(ctx context.Context, charterID int64, date time.Time, requestedSlots int) (bool, error) {
	slot, err := r.GetByCharterAndDate(ctx, charterID, date)
	if err == ErrSlotNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return slot.HasCapacity(requestedSlots), nil
}

// Reserve atomically consumes slotsToConsume slots from the ledger row.
// The increment only applies while booked_slots + N <= total_slots
// holds at write time; a concurrent winner exhausting capacity between
// check and write makes the update match zero rows. Returns false with
// no mutation in that case.
func (r *Repository) Reserve(ctx context.Context, charterID int64, date time.Time, slotsToConsume int) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("booked_slots", squirrel.Expr("booked_slots + ?", slotsToConsume)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"charter_id": charterID, "date": domain.NormalizeDate(date)}).
		Where(squirrel.Expr("booked_slots + ? <= total_slots", slotsToConsume)).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// Release returns slotsToRelease slots to the ledger row, floored at
// zero. Runs with the same atomic discipline as Reserve so a
// cancel/rebook race cannot corrupt the count.
func (r *Repository) Release(ctx context.Context, charterID int64, date time.Time, slotsToRelease int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("booked_slots", squirrel.Expr("GREATEST(booked_slots - ?, 0)", slotsToRelease)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"charter_id": charterID, "date": domain.NormalizeDate(date)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Upsert creates or resizes the ledger row for (charter_id, date).
// Resizing never shrinks total_slots below booked_slots, so the ledger
// invariant survives captains reducing capacity after bookings exist.
func (r *Repository) Upsert(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_slots").
		Columns("charter_id", "date", "total_slots", "booked_slots").
		Values(slot.CharterID, domain.NormalizeDate(slot.Date), slot.TotalSlots, 0).
		Suffix(`ON CONFLICT (charter_id, date) DO UPDATE
			SET total_slots = GREATEST(EXCLUDED.total_slots, availability_slots.booked_slots),
			    updated_at = NOW()`).
		Suffix("RETURNING " + strings.Join(slotColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	updated, err := r.scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - scan slot: %v", ErrScanRow, err)
	}

	return updated, nil
}

// ListByCharter fetches ledger rows for a charter, optionally bounded
// by a date range, ordered by date.
func (r *Repository) ListByCharter(ctx context.Context, charterID int64, from, to *time.Time) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{"charter_id": charterID}).
		OrderBy("date ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": domain.NormalizeDate(*from)})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": domain.NormalizeDate(*to)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCharter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCharter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		var slot domain.AvailabilitySlot
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&slot.ID,
			&slot.CharterID,
			&slot.Date,
			&slot.TotalSlots,
			&slot.BookedSlots,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByCharter - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCharter - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSlot(row rowScanner) (*domain.AvailabilitySlot, error) {
	var slot domain.AvailabilitySlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.CharterID,
		&slot.Date,
		&slot.TotalSlots,
		&slot.BookedSlots,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}
