package servicerequest

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Offer is a referrer's published link to one salon service.
type Offer struct {
	Code        string
	ReferrerID  uuid.UUID
	SalonID     uuid.UUID
	ServiceName string
	FeeCents    int64
}

type ServiceRequest struct {
	id             int64
	referralCode   string
	salonID        uuid.UUID
	referrerID     uuid.UUID
	serviceName    string
	feeCents       int64
	client         ClientContact
	preferredDates string
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

// New opens a request against a referral offer. The id is assigned on insert.
func New(offer Offer, client ClientContact, preferredDates string, now time.Time) (*ServiceRequest, error) {
	if strings.TrimSpace(offer.Code) == "" {
		return nil, ErrEmptyReferralCode
	}
	if offer.FeeCents <= 0 {
		return nil, ErrInvalidFee
	}
	return &ServiceRequest{
		referralCode:   offer.Code,
		salonID:        offer.SalonID,
		referrerID:     offer.ReferrerID,
		serviceName:    offer.ServiceName,
		feeCents:       offer.FeeCents,
		client:         client,
		preferredDates: strings.TrimSpace(preferredDates),
		status:         StatusPending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func Reconstruct(
	id int64,
	referralCode string,
	salonID, referrerID uuid.UUID,
	serviceName string,
	feeCents int64,
	client ClientContact,
	preferredDates string,
	status Status,
	createdAt, updatedAt time.Time,
) *ServiceRequest {
	return &ServiceRequest{
		id:             id,
		referralCode:   referralCode,
		salonID:        salonID,
		referrerID:     referrerID,
		serviceName:    serviceName,
		feeCents:       feeCents,
		client:         client,
		preferredDates: preferredDates,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ReconstructClientContact skips validation for stored rows.
func ReconstructClientContact(name, email, phone string) ClientContact {
	return ClientContact{name: name, email: email, phone: phone}
}

func (r *ServiceRequest) EnsureAcceptsTimeOptions() error {
	if !r.status.AcceptsTimeOptions() {
		return ErrClosed
	}
	return nil
}

func (r *ServiceRequest) OwnedBySalon(salonID uuid.UUID) bool {
	return r.salonID == salonID
}

func (r *ServiceRequest) ID() int64              { return r.id }
func (r *ServiceRequest) ReferralCode() string   { return r.referralCode }
func (r *ServiceRequest) SalonID() uuid.UUID     { return r.salonID }
func (r *ServiceRequest) ReferrerID() uuid.UUID  { return r.referrerID }
func (r *ServiceRequest) ServiceName() string    { return r.serviceName }
func (r *ServiceRequest) FeeCents() int64        { return r.feeCents }
func (r *ServiceRequest) Client() ClientContact  { return r.client }
func (r *ServiceRequest) PreferredDates() string { return r.preferredDates }
func (r *ServiceRequest) Status() Status         { return r.status }
func (r *ServiceRequest) CreatedAt() time.Time   { return r.createdAt }
func (r *ServiceRequest) UpdatedAt() time.Time   { return r.updatedAt }
