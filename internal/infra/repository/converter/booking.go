package converter

import (
	"salon-broker/internal/domain/booking"
	"salon-broker/internal/domain/slot"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	split := b.Split()
	return sqlc.CreateBookingParams{
		ID:                      b.ID(),
		RequestID:               b.RequestID(),
		SalonID:                 b.SalonID(),
		ReferrerID:              b.ReferrerID(),
		ClientName:              b.ClientName(),
		ClientEmail:             b.ClientEmail(),
		ServiceName:             b.ServiceName(),
		FeeCents:                split.FeeCents,
		PlatformCommissionCents: split.PlatformCommissionCents,
		ReferrerCommissionCents: split.ReferrerCommissionCents,
		SalonNetCents:           split.SalonNetCents,
		TransactionRef:          b.TransactionRef(),
		BookingStatus:           b.Status().String(),
		AppointmentTime:         b.AppointmentTime().String(),
		RefundReason:            pgconv.StringPtrToPgtype(b.RefundReason()),
		RefundRef:               pgconv.StringPtrToPgtype(b.RefundRef()),
		CreatedAt:               pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:               pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking, expected booking.Status) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		BookingStatus:   b.Status().String(),
		AppointmentTime: b.AppointmentTime().String(),
		RefundReason:    pgconv.StringPtrToPgtype(b.RefundReason()),
		RefundRef:       pgconv.StringPtrToPgtype(b.RefundRef()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:              b.ID(),
		ExpectedStatus:  expected.String(),
	}
}

func BookingToDomain(row sqlc.Bookings) *booking.Booking {
	return booking.Reconstruct(
		row.ID,
		booking.Params{
			RequestID:       row.RequestID,
			SalonID:         row.SalonID,
			ReferrerID:      row.ReferrerID,
			ClientName:      row.ClientName,
			ClientEmail:     row.ClientEmail,
			ServiceName:     row.ServiceName,
			AppointmentTime: slot.TimeOption(row.AppointmentTime),
			TransactionRef:  row.TransactionRef,
			Split: booking.Split{
				FeeCents:                row.FeeCents,
				PlatformCommissionCents: row.PlatformCommissionCents,
				ReferrerCommissionCents: row.ReferrerCommissionCents,
				SalonNetCents:           row.SalonNetCents,
			},
		},
		booking.Status(row.BookingStatus),
		pgconv.StringPtrFromPgtype(row.RefundReason),
		pgconv.StringPtrFromPgtype(row.RefundRef),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
