package response

import (
	"time"

	"salon-broker/internal/usecase/commands"
	"salon-broker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type DecisionHoldResponse struct {
	RequestID   int64     `json:"request_id"`
	HourToken   string    `json:"hour_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	TimeOptions []string  `json:"time_options"`
}

type CheckoutSessionResponse struct {
	RequestID       int64     `json:"request_id"`
	CheckoutToken   string    `json:"checkout_token"`
	TimeOption      string    `json:"time_option"`
	ExpiresAt       time.Time `json:"expires_at"`
	CheckoutURL     string    `json:"checkout_url,omitempty"`
	RequiresPayment bool      `json:"requires_payment"`
}

type AcceptedAlternativeResponse struct {
	BookingID       uuid.UUID `json:"booking_id"`
	RequestID       int64     `json:"request_id"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
}

type RefundResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	RefundRef string    `json:"refund_ref"`
}

type AvailabilityResponse struct {
	RequestID  int64  `json:"request_id"`
	TimeOption string `json:"time_option"`
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`
}

type BookingResponse struct {
	ID                      uuid.UUID `json:"id"`
	RequestID               int64     `json:"request_id"`
	ClientName              string    `json:"client_name"`
	ServiceName             string    `json:"service_name"`
	AppointmentTime         string    `json:"appointment_time"`
	Status                  string    `json:"status"`
	FeeCents                int64     `json:"fee_cents"`
	PlatformCommissionCents int64     `json:"platform_commission_cents"`
	ReferrerCommissionCents int64     `json:"referrer_commission_cents"`
	SalonNetCents           int64     `json:"salon_net_cents"`
	RefundReason            *string   `json:"refund_reason,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// copyInto panics only when src is nil.
func copyInto[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		panic("response copy: " + err.Error())
	}
	return &dst
}

func FromDecisionHold(h *commands.DecisionHold) *DecisionHoldResponse {
	return copyInto[DecisionHoldResponse](h)
}

func FromCheckoutSession(s *commands.CheckoutSession) *CheckoutSessionResponse {
	return copyInto[CheckoutSessionResponse](s)
}

func FromAcceptedAlternative(a *commands.AcceptedAlternative) *AcceptedAlternativeResponse {
	return copyInto[AcceptedAlternativeResponse](a)
}

func FromRefund(r *commands.RefundResult) *RefundResponse {
	return copyInto[RefundResponse](r)
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return copyInto[BookingResponse](v)
}
