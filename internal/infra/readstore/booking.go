package readstore

import (
	"context"

	"salon-broker/internal/infra"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"
	"salon-broker/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetActiveBookingByRequest(ctx context.Context, db sqlc.DBTX, requestID int64) (sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) FindActiveByRequest(ctx context.Context, requestID int64) (*queries.BookingView, error) {
	row, err := r.queries.GetActiveBookingByRequest(ctx, r.db, requestID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by request", err)
	}
	return toBookingView(row), nil
}

func toBookingView(row sqlc.Bookings) *queries.BookingView {
	return &queries.BookingView{
		ID:                      row.ID,
		RequestID:               row.RequestID,
		SalonID:                 row.SalonID,
		ReferrerID:              row.ReferrerID,
		ClientName:              row.ClientName,
		ClientEmail:             row.ClientEmail,
		ServiceName:             row.ServiceName,
		AppointmentTime:         row.AppointmentTime,
		Status:                  row.BookingStatus,
		FeeCents:                row.FeeCents,
		PlatformCommissionCents: row.PlatformCommissionCents,
		ReferrerCommissionCents: row.ReferrerCommissionCents,
		SalonNetCents:           row.SalonNetCents,
		TransactionRef:          row.TransactionRef,
		RefundReason:            pgconv.StringPtrFromPgtype(row.RefundReason),
		CreatedAt:               pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:               pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
