package repository

import (
	"context"
	"time"

	"salon-broker/internal/domain/hold"
	"salon-broker/internal/infra"
	"salon-broker/internal/infra/repository/converter"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type HoldQueries interface {
	CreateHold(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHoldParams) error
	GetHold(ctx context.Context, db sqlc.DBTX, token string) (sqlc.Holds, error)
	GetLiveHoldByRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLiveHoldByRequestParams) (sqlc.Holds, error)
	DeleteHold(ctx context.Context, db sqlc.DBTX, token string) error
	DeleteHoldsByRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteHoldsByRequestParams) error
	DeleteHoldsExpiredBefore(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) (int64, error)
}

type HoldRepository struct {
	queries HoldQueries
	db      sqlc.DBTX
}

func NewHoldRepository(queries HoldQueries, db sqlc.DBTX) *HoldRepository {
	return &HoldRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HoldRepository) Create(ctx context.Context, h *hold.Hold) error {
	if err := r.queries.CreateHold(ctx, r.db, converter.HoldToCreateParams(h)); err != nil {
		return infra.WrapRepoErr("failed to create hold", err)
	}
	return nil
}

func (r *HoldRepository) FindByToken(ctx context.Context, token string) (*hold.Hold, error) {
	row, err := r.queries.GetHold(ctx, r.db, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hold not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hold", err)
	}
	return converter.HoldToDomain(row), nil
}

// FindLiveByRequest returns the most recent unexpired hold of kind for the request.
func (r *HoldRepository) FindLiveByRequest(ctx context.Context, requestID int64, kind hold.Kind, now time.Time) (*hold.Hold, error) {
	row, err := r.queries.GetLiveHoldByRequest(ctx, r.db, sqlc.GetLiveHoldByRequestParams{
		RequestID: requestID,
		Kind:      kind.String(),
		ExpiresAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no live hold for request", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get live hold", err)
	}
	return converter.HoldToDomain(row), nil
}

func (r *HoldRepository) Delete(ctx context.Context, token string) error {
	if err := r.queries.DeleteHold(ctx, r.db, token); err != nil {
		return infra.WrapRepoErr("failed to delete hold", err)
	}
	return nil
}

func (r *HoldRepository) DeleteByRequest(ctx context.Context, requestID int64, kind hold.Kind) error {
	err := r.queries.DeleteHoldsByRequest(ctx, r.db, sqlc.DeleteHoldsByRequestParams{
		RequestID: requestID,
		Kind:      kind.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete request holds", err)
	}
	return nil
}

func (r *HoldRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := r.queries.DeleteHoldsExpiredBefore(ctx, r.db, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge expired holds", err)
	}
	return n, nil
}
