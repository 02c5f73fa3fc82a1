package readstore

import (
	"context"

	"salon-broker/internal/infra"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"
	"salon-broker/internal/usecase/queries"
)

type DecisionViewQueries interface {
	GetHold(ctx context.Context, db sqlc.DBTX, token string) (sqlc.Holds, error)
	GetRequestSummary(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetRequestSummaryRow, error)
	ListSlotsByRequest(ctx context.Context, db sqlc.DBTX, requestID int64) ([]sqlc.SlotReservations, error)
}

type DecisionReadStore struct {
	queries DecisionViewQueries
	db      sqlc.DBTX
}

func NewDecisionReadStore(queries DecisionViewQueries, db sqlc.DBTX) *DecisionReadStore {
	return &DecisionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DecisionReadStore) FindHold(ctx context.Context, token string) (*queries.HoldRow, error) {
	row, err := r.queries.GetHold(ctx, r.db, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hold not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hold", err)
	}
	return &queries.HoldRow{
		Token:      row.Token,
		RequestID:  row.RequestID,
		Kind:       row.Kind,
		TimeOption: pgconv.StringPtrFromPgtype(row.TimeOption),
		ExpiresAt:  pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *DecisionReadStore) FindRequestSummary(ctx context.Context, requestID int64) (*queries.RequestSummary, error) {
	row, err := r.queries.GetRequestSummary(ctx, r.db, requestID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get request summary", err)
	}
	return &queries.RequestSummary{
		ID:          row.ID,
		SalonID:     row.SalonID,
		SalonName:   row.SalonName,
		ServiceName: row.ServiceName,
		FeeCents:    row.FeeCents,
		ClientName:  row.ClientName,
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *DecisionReadStore) ListSlots(ctx context.Context, requestID int64) ([]*queries.SlotRow, error) {
	rows, err := r.queries.ListSlotsByRequest(ctx, r.db, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	out := make([]*queries.SlotRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.SlotRow{
			TimeOption:  row.TimeOption,
			IsAvailable: row.IsAvailable,
			ReservedBy:  pgconv.StringPtrFromPgtype(row.ReservedBy),
			ReservedAt:  pgconv.TimePtrFromPgtype(row.ReservedAt),
			ExpiresAt:   pgconv.TimePtrFromPgtype(row.ExpiresAt),
		})
	}
	return out, nil
}
