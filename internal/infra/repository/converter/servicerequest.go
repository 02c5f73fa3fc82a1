package converter

import (
	"salon-broker/internal/domain/servicerequest"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"
)

func ServiceRequestToCreateParams(r *servicerequest.ServiceRequest) sqlc.CreateServiceRequestParams {
	client := r.Client()
	return sqlc.CreateServiceRequestParams{
		ReferralCode:   r.ReferralCode(),
		SalonID:        r.SalonID(),
		ReferrerID:     r.ReferrerID(),
		ServiceName:    r.ServiceName(),
		FeeCents:       r.FeeCents(),
		ClientName:     client.Name(),
		ClientEmail:    client.Email(),
		ClientPhone:    client.Phone(),
		PreferredDates: r.PreferredDates(),
		Status:         r.Status().String(),
		CreatedAt:      pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ServiceRequestToDomain(row sqlc.ServiceRequests) *servicerequest.ServiceRequest {
	return servicerequest.Reconstruct(
		row.ID,
		row.ReferralCode,
		row.SalonID,
		row.ReferrerID,
		row.ServiceName,
		row.FeeCents,
		servicerequest.ReconstructClientContact(row.ClientName, row.ClientEmail, row.ClientPhone),
		row.PreferredDates,
		servicerequest.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func OfferToDomain(row sqlc.ReferralOffers) *servicerequest.Offer {
	return &servicerequest.Offer{
		Code:        row.Code,
		ReferrerID:  row.ReferrerID,
		SalonID:     row.SalonID,
		ServiceName: row.ServiceName,
		FeeCents:    row.FeeCents,
	}
}
