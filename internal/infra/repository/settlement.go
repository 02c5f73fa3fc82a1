package repository

import (
	"context"
	"time"

	"salon-broker/internal/infra"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"
	"salon-broker/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type SettlementQueries interface {
	InsertSettlementEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSettlementEventParams) (int64, error)
	GetSettlementEvent(ctx context.Context, db sqlc.DBTX, transactionRef string) (sqlc.SettlementEvents, error)
	AdvanceSettlementEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.AdvanceSettlementEventParams) (int64, error)
}

type SettlementRepository struct {
	queries SettlementQueries
	db      sqlc.DBTX
}

func NewSettlementRepository(queries SettlementQueries, db sqlc.DBTX) *SettlementRepository {
	return &SettlementRepository{
		queries: queries,
		db:      db,
	}
}

// Begin reports false when a cursor for the transaction ref already exists.
func (r *SettlementRepository) Begin(ctx context.Context, c shared.SettlementCursor) (bool, error) {
	n, err := r.queries.InsertSettlementEvent(ctx, r.db, sqlc.InsertSettlementEventParams{
		TransactionRef: c.TransactionRef,
		RequestID:      c.RequestID,
		BookingID:      c.BookingID,
		Step:           string(c.Step),
		UpdatedAt:      pgconv.TimeToPgtype(c.UpdatedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to begin settlement", err)
	}
	return n > 0, nil
}

func (r *SettlementRepository) Find(ctx context.Context, transactionRef string) (*shared.SettlementCursor, error) {
	row, err := r.queries.GetSettlementEvent(ctx, r.db, transactionRef)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("settlement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get settlement", err)
	}
	return &shared.SettlementCursor{
		TransactionRef: row.TransactionRef,
		RequestID:      row.RequestID,
		BookingID:      row.BookingID,
		Step:           shared.SettlementStep(row.Step),
		CompletedAt:    pgconv.TimePtrFromPgtype(row.CompletedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// Advance moves the cursor to step; reaching the final step stamps completion.
func (r *SettlementRepository) Advance(ctx context.Context, transactionRef string, step shared.SettlementStep, now time.Time) error {
	completedAt := pgtype.Timestamptz{Valid: false}
	if step == shared.StepNotified {
		completedAt = pgconv.TimeToPgtype(now)
	}
	n, err := r.queries.AdvanceSettlementEvent(ctx, r.db, sqlc.AdvanceSettlementEventParams{
		Step:           string(step),
		UpdatedAt:      pgconv.TimeToPgtype(now),
		CompletedAt:    completedAt,
		TransactionRef: transactionRef,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to advance settlement", err)
	}
	if n == 0 {
		return infra.NotFound("settlement not found")
	}
	return nil
}
