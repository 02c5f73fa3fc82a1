package repository

import (
	"context"

	"salon-broker/internal/domain/servicerequest"
	"salon-broker/internal/infra"
	"salon-broker/internal/infra/repository/converter"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"
	"salon-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type PartyQueries interface {
	GetReferralOffer(ctx context.Context, db sqlc.DBTX, code string) (sqlc.ReferralOffers, error)
	GetSalon(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Salons, error)
	GetReferrer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Referrers, error)
}

// PartyRepository serves both referral offers and the salon/referrer
// directory; all three are read-only reference data.
type PartyRepository struct {
	queries PartyQueries
	db      sqlc.DBTX
}

func NewPartyRepository(queries PartyQueries, db sqlc.DBTX) *PartyRepository {
	return &PartyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PartyRepository) FindByCode(ctx context.Context, code string) (*servicerequest.Offer, error) {
	row, err := r.queries.GetReferralOffer(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("referral offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get referral offer", err)
	}
	return converter.OfferToDomain(row), nil
}

func (r *PartyRepository) SalonByID(ctx context.Context, id uuid.UUID) (*shared.PartySnapshot, error) {
	row, err := r.queries.GetSalon(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("salon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get salon", err)
	}
	return &shared.PartySnapshot{ID: row.ID, Name: row.Name, Email: row.Email}, nil
}

func (r *PartyRepository) ReferrerByID(ctx context.Context, id uuid.UUID) (*shared.PartySnapshot, error) {
	row, err := r.queries.GetReferrer(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("referrer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get referrer", err)
	}
	return &shared.PartySnapshot{ID: row.ID, Name: row.Name, Email: row.Email}, nil
}
