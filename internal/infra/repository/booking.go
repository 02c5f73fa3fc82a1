package repository

import (
	"context"

	"salon-broker/internal/domain/booking"
	"salon-broker/internal/infra"
	"salon-broker/internal/infra/repository/converter"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	GetBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetActiveBookingByRequest(ctx context.Context, db sqlc.DBTX, requestID int64) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create fails with DUPLICATE_KEY when the request already has an active
// booking or the transaction ref was recorded before.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return converter.BookingToDomain(row), nil
}

func (r *BookingRepository) FindActiveByRequest(ctx context.Context, requestID int64) (*booking.Booking, error) {
	row, err := r.queries.GetActiveBookingByRequest(ctx, r.db, requestID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get active booking", err)
	}
	return converter.BookingToDomain(row), nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking, expected booking.Status) (int64, error) {
	rows, err := r.queries.UpdateBooking(ctx, r.db, converter.BookingToUpdateParams(b, expected))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update booking", err)
	}
	return rows, nil
}
