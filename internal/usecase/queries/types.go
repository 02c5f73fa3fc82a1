package queries

import (
	"time"

	"github.com/google/uuid"
)

// RequestSummary is the slice of a service request the read side needs.
type RequestSummary struct {
	ID          int64     `json:"id"`
	SalonID     uuid.UUID `json:"salon_id"`
	SalonName   string    `json:"salon_name"`
	ServiceName string    `json:"service_name"`
	FeeCents    int64     `json:"fee_cents"`
	ClientName  string    `json:"client_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type SlotRow struct {
	TimeOption  string
	IsAvailable bool
	ReservedBy  *string
	ReservedAt  *time.Time
	ExpiresAt   *time.Time
}

type HoldRow struct {
	Token      string
	RequestID  int64
	Kind       string
	TimeOption *string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

type TimeOptionView struct {
	TimeOption string `json:"time_option"`
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`
}

type DecisionView struct {
	Request   RequestSummary   `json:"request"`
	ExpiresAt time.Time        `json:"expires_at"`
	Options   []TimeOptionView `json:"options"`
}

type BookingView struct {
	ID                      uuid.UUID `json:"id"`
	RequestID               int64     `json:"request_id"`
	SalonID                 uuid.UUID `json:"salon_id"`
	ReferrerID              uuid.UUID `json:"referrer_id"`
	ClientName              string    `json:"client_name"`
	ClientEmail             string    `json:"client_email"`
	ServiceName             string    `json:"service_name"`
	AppointmentTime         string    `json:"appointment_time"`
	Status                  string    `json:"status"`
	FeeCents                int64     `json:"fee_cents"`
	PlatformCommissionCents int64     `json:"platform_commission_cents"`
	ReferrerCommissionCents int64     `json:"referrer_commission_cents"`
	SalonNetCents           int64     `json:"salon_net_cents"`
	TransactionRef          string    `json:"transaction_ref"`
	RefundReason            *string   `json:"refund_reason,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

type EarningsCredit struct {
	BookingID   uuid.UUID `json:"booking_id"`
	ServiceName string    `json:"service_name"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReferrerEarningsView struct {
	ReferrerID         uuid.UUID         `json:"referrer_id"`
	Name               string            `json:"name"`
	TotalEarningsCents int64             `json:"total_earnings_cents"`
	Credits            []*EarningsCredit `json:"credits"`
	Next               *Cursor           `json:"next,omitempty"`
}
