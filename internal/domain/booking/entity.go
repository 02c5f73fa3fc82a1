package booking

import (
	"errors"
	"strings"
	"time"

	"salon-broker/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrEmptyTransactionRef = errors.New("transaction reference cannot be empty")
	ErrEmptyRefundReason   = errors.New("refund reason cannot be empty")
)

type Params struct {
	RequestID       int64
	SalonID         uuid.UUID
	ReferrerID      uuid.UUID
	ClientName      string
	ClientEmail     string
	ServiceName     string
	AppointmentTime slot.TimeOption
	TransactionRef  string
	Split           Split
}

type Booking struct {
	id              uuid.UUID
	requestID       int64
	salonID         uuid.UUID
	referrerID      uuid.UUID
	clientName      string
	clientEmail     string
	serviceName     string
	appointmentTime slot.TimeOption
	transactionRef  string
	split           Split
	status          Status
	refundReason    *string
	refundRef       *string
	createdAt       time.Time
	updatedAt       time.Time
}

// New records a paid booking awaiting salon confirmation.
func New(p Params, now time.Time) (*Booking, error) {
	if strings.TrimSpace(p.TransactionRef) == "" {
		return nil, ErrEmptyTransactionRef
	}
	if p.Split.FeeCents <= 0 {
		return nil, ErrNonPositiveFee
	}
	return &Booking{
		id:              uuid.New(),
		requestID:       p.RequestID,
		salonID:         p.SalonID,
		referrerID:      p.ReferrerID,
		clientName:      p.ClientName,
		clientEmail:     p.ClientEmail,
		serviceName:     p.ServiceName,
		appointmentTime: p.AppointmentTime,
		transactionRef:  p.TransactionRef,
		split:           p.Split,
		status:          StatusPendingConfirmation,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	p Params,
	status Status,
	refundReason, refundRef *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		requestID:       p.RequestID,
		salonID:         p.SalonID,
		referrerID:      p.ReferrerID,
		clientName:      p.ClientName,
		clientEmail:     p.ClientEmail,
		serviceName:     p.ServiceName,
		appointmentTime: p.AppointmentTime,
		transactionRef:  p.TransactionRef,
		split:           p.Split,
		status:          status,
		refundReason:    refundReason,
		refundRef:       refundRef,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) apply(e Event, now time.Time) error {
	next, err := b.status.Next(e)
	if err != nil {
		return err
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) Confirm(now time.Time) error {
	return b.apply(EventSalonConfirms, now)
}

func (b *Booking) OfferAlternatives(now time.Time) error {
	return b.apply(EventSalonOffersAlternatives, now)
}

// AcceptAlternative moves the appointment to opt without a new charge.
func (b *Booking) AcceptAlternative(opt slot.TimeOption, now time.Time) error {
	if err := b.apply(EventClientAcceptsAlternative, now); err != nil {
		return err
	}
	b.appointmentTime = opt
	return nil
}

// CanRefund checks the transition without applying it.
func (b *Booking) CanRefund() error {
	_, err := b.status.Next(EventRefund)
	return err
}

func (b *Booking) Refund(reason, refundRef string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyRefundReason
	}
	if err := b.apply(EventRefund, now); err != nil {
		return err
	}
	b.refundReason = &reason
	if refundRef != "" {
		b.refundRef = &refundRef
	}
	return nil
}

func (b *Booking) OwnedBySalon(salonID uuid.UUID) bool {
	return b.salonID == salonID
}

// Params returns the immutable booking attributes.
func (b *Booking) Params() Params {
	return Params{
		RequestID:       b.requestID,
		SalonID:         b.salonID,
		ReferrerID:      b.referrerID,
		ClientName:      b.clientName,
		ClientEmail:     b.clientEmail,
		ServiceName:     b.serviceName,
		AppointmentTime: b.appointmentTime,
		TransactionRef:  b.transactionRef,
		Split:           b.split,
	}
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) RequestID() int64                 { return b.requestID }
func (b *Booking) SalonID() uuid.UUID               { return b.salonID }
func (b *Booking) ReferrerID() uuid.UUID            { return b.referrerID }
func (b *Booking) ClientName() string               { return b.clientName }
func (b *Booking) ClientEmail() string              { return b.clientEmail }
func (b *Booking) ServiceName() string              { return b.serviceName }
func (b *Booking) AppointmentTime() slot.TimeOption { return b.appointmentTime }
func (b *Booking) TransactionRef() string           { return b.transactionRef }
func (b *Booking) Split() Split                     { return b.split }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) RefundReason() *string            { return b.refundReason }
func (b *Booking) RefundRef() *string               { return b.refundRef }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }
