package shared

import (
	"context"
	"time"
)

type ChargeRequest struct {
	AmountCents int64
	Currency    string
	Description string
	SuccessURL  string
	CancelURL   string
	// Metadata is echoed back on the completion event for correlation.
	Metadata map[string]string
}

type Charge struct {
	ChargeRef   string
	CheckoutURL string
}

type RefundRequest struct {
	TransactionRef string
	AmountCents    int64
	Reason         string
	IdempotencyKey string
}

type PaymentGateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error)
	Refund(ctx context.Context, req RefundRequest) (string, error)
}

type NotificationKind string

const (
	NotifyWaitlistConfirmation    NotificationKind = "waitlist_confirmation"
	NotifyNewRequest              NotificationKind = "new_request"
	NotifyTimeOptionsOffered      NotificationKind = "time_options_offered"
	NotifyAwaitingConfirmation    NotificationKind = "awaiting_salon_confirmation"
	NotifySalonConfirmationNeeded NotificationKind = "salon_confirmation_required"
	NotifyCommissionEarned        NotificationKind = "commission_earned"
	NotifyAppointmentConfirmed    NotificationKind = "appointment_confirmed"
	NotifyAlternativesOffered     NotificationKind = "alternatives_offered"
	NotifyRefundProcessed         NotificationKind = "refund_processed"
	NotifyRequestCancelled        NotificationKind = "request_cancelled"
	NotifyRescheduleRequested     NotificationKind = "reschedule_requested"
)

type NotifyResult struct {
	Delivered  bool
	MessageRef string
}

type Notifier interface {
	Notify(ctx context.Context, recipient string, kind NotificationKind, data map[string]any) (NotifyResult, error)
}

// Locker grants a short lease so only one replica runs a periodic job.
type Locker interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context), acquired bool, err error)
}
