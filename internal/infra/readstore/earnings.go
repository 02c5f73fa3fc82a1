package readstore

import (
	"context"
	"time"

	"salon-broker/internal/infra"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"
	"salon-broker/internal/usecase/queries"

	"github.com/google/uuid"
)

type EarningsViewQueries interface {
	GetReferrer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Referrers, error)
	ListReferrerCreditsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReferrerCreditsFirstPageParams) ([]sqlc.ListReferrerCreditsFirstPageRow, error)
	ListReferrerCreditsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReferrerCreditsKeysetParams) ([]sqlc.ListReferrerCreditsKeysetRow, error)
}

type EarningsReadStore struct {
	queries EarningsViewQueries
	db      sqlc.DBTX
}

func NewEarningsReadStore(queries EarningsViewQueries, db sqlc.DBTX) *EarningsReadStore {
	return &EarningsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EarningsReadStore) FindReferrer(ctx context.Context, referrerID uuid.UUID) (*queries.ReferrerEarningsView, error) {
	row, err := r.queries.GetReferrer(ctx, r.db, referrerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("referrer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get referrer", err)
	}
	return &queries.ReferrerEarningsView{
		ReferrerID:         row.ID,
		Name:               row.Name,
		TotalEarningsCents: row.TotalEarningsCents,
	}, nil
}

func (r *EarningsReadStore) ListCreditsFirstPage(ctx context.Context, referrerID uuid.UUID, limit int32) ([]*queries.EarningsCredit, error) {
	rows, err := r.queries.ListReferrerCreditsFirstPage(ctx, r.db, sqlc.ListReferrerCreditsFirstPageParams{
		ReferrerID: referrerID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list earnings credits first page", err)
	}
	out := make([]*queries.EarningsCredit, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.EarningsCredit{
			BookingID:   row.BookingID,
			ServiceName: row.ServiceName,
			AmountCents: row.AmountCents,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *EarningsReadStore) ListCreditsKeyset(ctx context.Context, referrerID uuid.UUID, lastCreatedAt time.Time, lastBookingID uuid.UUID, limit int32) ([]*queries.EarningsCredit, error) {
	rows, err := r.queries.ListReferrerCreditsKeyset(ctx, r.db, sqlc.ListReferrerCreditsKeysetParams{
		ReferrerID: referrerID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		BookingID:  lastBookingID,
		Lim:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list earnings credits keyset", err)
	}
	out := make([]*queries.EarningsCredit, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.EarningsCredit{
			BookingID:   row.BookingID,
			ServiceName: row.ServiceName,
			AmountCents: row.AmountCents,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
