package repository

import (
	"context"
	"time"

	"salon-broker/internal/domain/slot"
	"salon-broker/internal/infra"
	"salon-broker/internal/infra/repository/converter"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type SlotQueries interface {
	DeleteSlotsByRequest(ctx context.Context, db sqlc.DBTX, requestID int64) error
	InsertSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSlotsParams) error
	GetSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSlotParams) (sqlc.SlotReservations, error)
	ListSlotsByRequest(ctx context.Context, db sqlc.DBTX, requestID int64) ([]sqlc.SlotReservations, error)
	ReserveSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveSlotParams) (int64, error)
	ConsumeSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumeSlotParams) (int64, error)
	ReleaseSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseSlotParams) error
	ReleaseSlotHeldBy(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseSlotHeldByParams) (int64, error)
	SweepExpiredSlots(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type SlotRepository struct {
	queries SlotQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

// ReplaceForRequest drops every slot of the request and inserts options as open.
// Callers run it inside a transaction.
func (r *SlotRepository) ReplaceForRequest(ctx context.Context, requestID int64, options []slot.TimeOption) error {
	if err := r.queries.DeleteSlotsByRequest(ctx, r.db, requestID); err != nil {
		return infra.WrapRepoErr("failed to clear slots", err)
	}
	if len(options) == 0 {
		return nil
	}
	err := r.queries.InsertSlots(ctx, r.db, sqlc.InsertSlotsParams{
		RequestID:   requestID,
		TimeOptions: slot.Strings(options),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert slots", err)
	}
	return nil
}

func (r *SlotRepository) Find(ctx context.Context, requestID int64, opt slot.TimeOption) (*slot.Reservation, error) {
	row, err := r.queries.GetSlot(ctx, r.db, sqlc.GetSlotParams{RequestID: requestID, TimeOption: opt.String()})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get slot", err)
	}
	return converter.SlotToDomain(row), nil
}

func (r *SlotRepository) ListByRequest(ctx context.Context, requestID int64) ([]*slot.Reservation, error) {
	rows, err := r.queries.ListSlotsByRequest(ctx, r.db, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	out := make([]*slot.Reservation, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.SlotToDomain(row))
	}
	return out, nil
}

// Reserve claims the slot when it is open or its hold has lapsed. Zero rows
// means another holder has it or it was never offered.
func (r *SlotRepository) Reserve(ctx context.Context, requestID int64, opt slot.TimeOption, holder string, now, expiresAt time.Time) (int64, error) {
	rows, err := r.queries.ReserveSlot(ctx, r.db, sqlc.ReserveSlotParams{
		Holder:     holder,
		Now:        pgconv.TimeToPgtype(now),
		ExpiresAt:  pgconv.TimeToPgtype(expiresAt),
		RequestID:  requestID,
		TimeOption: opt.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reserve slot", err)
	}
	return rows, nil
}

func (r *SlotRepository) Consume(ctx context.Context, requestID int64, opt slot.TimeOption, holder string, now time.Time) (int64, error) {
	rows, err := r.queries.ConsumeSlot(ctx, r.db, sqlc.ConsumeSlotParams{
		RequestID:  requestID,
		TimeOption: opt.String(),
		Holder:     holder,
		Now:        pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to consume slot", err)
	}
	return rows, nil
}

func (r *SlotRepository) Release(ctx context.Context, requestID int64, opt slot.TimeOption) error {
	err := r.queries.ReleaseSlot(ctx, r.db, sqlc.ReleaseSlotParams{RequestID: requestID, TimeOption: opt.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to release slot", err)
	}
	return nil
}

func (r *SlotRepository) ReleaseHeldBy(ctx context.Context, requestID int64, opt slot.TimeOption, holder string) (int64, error) {
	rows, err := r.queries.ReleaseSlotHeldBy(ctx, r.db, sqlc.ReleaseSlotHeldByParams{
		RequestID:  requestID,
		TimeOption: opt.String(),
		Holder:     holder,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release held slot", err)
	}
	return rows, nil
}

func (r *SlotRepository) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	rows, err := r.queries.SweepExpiredSlots(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep expired slots", err)
	}
	return rows, nil
}
