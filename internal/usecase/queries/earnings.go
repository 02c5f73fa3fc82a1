package queries

import (
	"context"
	"time"

	"salon-broker/internal/infra"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type EarningsReadStore interface {
	FindReferrer(ctx context.Context, referrerID uuid.UUID) (*ReferrerEarningsView, error)
	ListCreditsFirstPage(ctx context.Context, referrerID uuid.UUID, limit int32) ([]*EarningsCredit, error)
	ListCreditsKeyset(ctx context.Context, referrerID uuid.UUID, lastCreatedAt time.Time, lastBookingID uuid.UUID, limit int32) ([]*EarningsCredit, error)
}

type EarningsQueries interface {
	GetReferrerEarnings(ctx context.Context, principal shared.Principal, referrerID uuid.UUID, cursor *Cursor, limit int) (*ReferrerEarningsView, error)
}

type earningsQueriesImpl struct {
	store EarningsReadStore
}

func NewEarningsQueries(store EarningsReadStore) EarningsQueries {
	return &earningsQueriesImpl{store: store}
}

// GetReferrerEarnings returns the running total and one page of credits,
// newest first. Only the referrer may read their own earnings.
func (q *earningsQueriesImpl) GetReferrerEarnings(
	ctx context.Context,
	principal shared.Principal,
	referrerID uuid.UUID,
	cursor *Cursor,
	limit int,
) (*ReferrerEarningsView, error) {
	if principal.Kind != shared.PrincipalReferrer || principal.AccountID != referrerID {
		return nil, errs.ErrForbidden
	}

	view, err := q.store.FindReferrer(ctx, referrerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrForbidden)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	limit = ValidateLimit(limit)
	var rows []*EarningsCredit
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListCreditsFirstPage(ctx, referrerID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, errs.Mark(derr, errs.ErrDomainValidation)
		}
		rows, err = q.store.ListCreditsKeyset(ctx, referrerID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if len(rows) > limit {
		last := rows[limit-1]
		view.Next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.BookingID)}
		rows = rows[:limit]
	}
	view.Credits = rows
	return view, nil
}
