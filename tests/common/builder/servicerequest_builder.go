//go:build unit || e2e

package builder

import (
	"time"

	"salon-broker/internal/domain/servicerequest"

	"github.com/google/uuid"
)

type ServiceRequestBuilder struct {
	ID             int64
	ReferralCode   string
	SalonID        uuid.UUID
	ReferrerID     uuid.UUID
	ServiceName    string
	FeeCents       int64
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	PreferredDates string
	Status         servicerequest.Status
	CreatedAt      time.Time
}

func NewServiceRequestBuilder() *ServiceRequestBuilder {
	return &ServiceRequestBuilder{
		ID:             42,
		ReferralCode:   "GLOW-2026",
		SalonID:        uuid.MustParse("5a10c0de-0000-4000-8000-000000000001"),
		ReferrerID:     uuid.MustParse("4ef00000-0000-4000-8000-000000000002"),
		ServiceName:    "Balayage",
		FeeCents:       15000,
		ClientName:     "Dana Client",
		ClientEmail:    "dana@example.com",
		ClientPhone:    "+1 555 0100",
		PreferredDates: "weekday afternoons",
		Status:         servicerequest.StatusPending,
		CreatedAt:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ServiceRequestBuilder) With(mutate func(*ServiceRequestBuilder)) *ServiceRequestBuilder {
	mutate(b)
	return b
}

func (b *ServiceRequestBuilder) BuildOffer() servicerequest.Offer {
	return servicerequest.Offer{
		Code:        b.ReferralCode,
		ReferrerID:  b.ReferrerID,
		SalonID:     b.SalonID,
		ServiceName: b.ServiceName,
		FeeCents:    b.FeeCents,
	}
}

// BuildNew runs the validating constructor, leaving the id unassigned.
func (b *ServiceRequestBuilder) BuildNew() (*servicerequest.ServiceRequest, error) {
	client, err := servicerequest.NewClientContact(b.ClientName, b.ClientEmail, b.ClientPhone)
	if err != nil {
		return nil, err
	}
	return servicerequest.New(b.BuildOffer(), client, b.PreferredDates, b.CreatedAt)
}

func (b *ServiceRequestBuilder) BuildDomain() *servicerequest.ServiceRequest {
	return servicerequest.Reconstruct(
		b.ID,
		b.ReferralCode,
		b.SalonID,
		b.ReferrerID,
		b.ServiceName,
		b.FeeCents,
		servicerequest.ReconstructClientContact(b.ClientName, b.ClientEmail, b.ClientPhone),
		b.PreferredDates,
		b.Status,
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *ServiceRequestBuilder) WithID(id int64) *ServiceRequestBuilder {
	b.ID = id
	return b
}

func (b *ServiceRequestBuilder) WithFeeCents(fee int64) *ServiceRequestBuilder {
	b.FeeCents = fee
	return b
}

func (b *ServiceRequestBuilder) WithStatus(status servicerequest.Status) *ServiceRequestBuilder {
	b.Status = status
	return b
}

func (b *ServiceRequestBuilder) WithSalonID(id uuid.UUID) *ServiceRequestBuilder {
	b.SalonID = id
	return b
}
