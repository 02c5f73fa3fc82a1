package repository

import (
	"context"
	"time"

	"salon-broker/internal/infra"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EarningsQueries interface {
	InsertEarningsCredit(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertEarningsCreditParams) (int64, error)
	AddReferrerEarnings(ctx context.Context, db sqlc.DBTX, arg sqlc.AddReferrerEarningsParams) error
}

type EarningsRepository struct {
	queries EarningsQueries
	db      sqlc.DBTX
}

func NewEarningsRepository(queries EarningsQueries, db sqlc.DBTX) *EarningsRepository {
	return &EarningsRepository{
		queries: queries,
		db:      db,
	}
}

// Credit records the per-booking credit row first; the running total only
// moves when that insert was not a conflict.
func (r *EarningsRepository) Credit(ctx context.Context, bookingID, referrerID uuid.UUID, amountCents int64, now time.Time) (bool, error) {
	inserted, err := r.queries.InsertEarningsCredit(ctx, r.db, sqlc.InsertEarningsCreditParams{
		BookingID:   bookingID,
		ReferrerID:  referrerID,
		AmountCents: amountCents,
		CreatedAt:   pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert earnings credit", err)
	}
	if inserted == 0 {
		return false, nil
	}

	err = r.queries.AddReferrerEarnings(ctx, r.db, sqlc.AddReferrerEarningsParams{
		AmountCents: amountCents,
		ID:          referrerID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to add referrer earnings", err)
	}
	return true, nil
}
