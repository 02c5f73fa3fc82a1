//go:build unit || e2e

package builder

import (
	"time"

	"salon-broker/internal/domain/booking"
	"salon-broker/internal/domain/slot"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	RequestID       int64
	SalonID         uuid.UUID
	ReferrerID      uuid.UUID
	ClientName      string
	ClientEmail     string
	ServiceName     string
	AppointmentTime slot.TimeOption
	TransactionRef  string
	FeeCents        int64
	Rates           booking.Rates
	Status          booking.Status
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	sr := NewServiceRequestBuilder()
	return &BookingBuilder{
		ID:              uuid.New(),
		RequestID:       sr.ID,
		SalonID:         sr.SalonID,
		ReferrerID:      sr.ReferrerID,
		ClientName:      sr.ClientName,
		ClientEmail:     sr.ClientEmail,
		ServiceName:     sr.ServiceName,
		AppointmentTime: "Tue 3pm",
		TransactionRef:  "pi_test_0001",
		FeeCents:        sr.FeeCents,
		Rates:           booking.DefaultRates(),
		Status:          booking.StatusPendingConfirmation,
		CreatedAt:       time.Date(2026, 3, 2, 10, 5, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) params() (booking.Params, error) {
	split, err := b.Rates.Split(b.FeeCents)
	if err != nil {
		return booking.Params{}, err
	}
	return booking.Params{
		RequestID:       b.RequestID,
		SalonID:         b.SalonID,
		ReferrerID:      b.ReferrerID,
		ClientName:      b.ClientName,
		ClientEmail:     b.ClientEmail,
		ServiceName:     b.ServiceName,
		AppointmentTime: b.AppointmentTime,
		TransactionRef:  b.TransactionRef,
		Split:           split,
	}, nil
}

func (b *BookingBuilder) BuildNew() (*booking.Booking, error) {
	p, err := b.params()
	if err != nil {
		return nil, err
	}
	return booking.New(p, b.CreatedAt)
}

// BuildDomain reconstructs a stored booking in the builder's status.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	p, err := b.params()
	if err != nil {
		panic(err)
	}
	return booking.Reconstruct(b.ID, p, b.Status, nil, nil, b.CreatedAt, b.CreatedAt)
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithFeeCents(fee int64) *BookingBuilder {
	b.FeeCents = fee
	return b
}

func (b *BookingBuilder) WithTransactionRef(ref string) *BookingBuilder {
	b.TransactionRef = ref
	return b
}
