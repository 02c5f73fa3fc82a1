package queries

import (
	"context"

	"salon-broker/internal/infra"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindActiveByRequest(ctx context.Context, requestID int64) (*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, principal shared.Principal, id uuid.UUID) (*BookingView, error)
	GetForRequest(ctx context.Context, principal shared.Principal, requestID int64) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, principal shared.Principal, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, bookingReadErr(err)
	}
	if !canSeeBooking(principal, v) {
		return nil, errs.ErrForbidden
	}
	return v, nil
}

func (q *bookingQueriesImpl) GetForRequest(ctx context.Context, principal shared.Principal, requestID int64) (*BookingView, error) {
	v, err := q.store.FindActiveByRequest(ctx, requestID)
	if err != nil {
		return nil, bookingReadErr(err)
	}
	if !canSeeBooking(principal, v) {
		return nil, errs.ErrForbidden
	}
	return v, nil
}

// canSeeBooking admits the owning salon, the referrer who earned on it, and a
// client holding a token for the same request.
func canSeeBooking(p shared.Principal, v *BookingView) bool {
	switch p.Kind {
	case shared.PrincipalSalon:
		return p.AccountID == v.SalonID
	case shared.PrincipalReferrer:
		return p.AccountID == v.ReferrerID
	case shared.PrincipalClient:
		return p.RequestID == v.RequestID
	}
	return false
}

func bookingReadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrBookingNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
