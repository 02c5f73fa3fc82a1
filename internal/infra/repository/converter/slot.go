package converter

import (
	"salon-broker/internal/domain/hold"
	"salon-broker/internal/domain/slot"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func SlotToDomain(row sqlc.SlotReservations) *slot.Reservation {
	return slot.Reconstruct(
		row.RequestID,
		slot.TimeOption(row.TimeOption),
		row.IsAvailable,
		pgconv.StringPtrFromPgtype(row.ReservedBy),
		pgconv.TimePtrFromPgtype(row.ReservedAt),
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
	)
}

func HoldToCreateParams(h *hold.Hold) sqlc.CreateHoldParams {
	opt := pgtype.Text{Valid: false}
	if h.TimeOption() != "" {
		opt = pgconv.StringToPgtype(h.TimeOption().String())
	}
	return sqlc.CreateHoldParams{
		Token:      h.Token(),
		RequestID:  h.RequestID(),
		Kind:       string(h.Kind()),
		TimeOption: opt,
		ExpiresAt:  pgconv.TimeToPgtype(h.ExpiresAt()),
		CreatedAt:  pgconv.TimeToPgtype(h.CreatedAt()),
	}
}

func HoldToDomain(row sqlc.Holds) *hold.Hold {
	return hold.Reconstruct(
		row.Token,
		row.RequestID,
		hold.Kind(row.Kind),
		slot.TimeOption(row.TimeOption.String),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
