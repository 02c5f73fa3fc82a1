package shared

import (
	"time"

	"github.com/google/uuid"
)

type PartySnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type SettlementStep string

// Steps run in declaration order; a cursor names the last one completed.
const (
	StepBookingRecorded  SettlementStep = "booking_recorded"
	StepRequestConfirmed SettlementStep = "request_confirmed"
	StepEarningsCredited SettlementStep = "earnings_credited"
	StepNotified         SettlementStep = "notified"
)

var settlementOrder = map[SettlementStep]int{
	StepBookingRecorded:  1,
	StepRequestConfirmed: 2,
	StepEarningsCredited: 3,
	StepNotified:         4,
}

// Reached reports whether step s is at or beyond target.
func (s SettlementStep) Reached(target SettlementStep) bool {
	return settlementOrder[s] >= settlementOrder[target]
}

// SettlementCursor tracks progress of one payment through settlement.
type SettlementCursor struct {
	TransactionRef string
	RequestID      int64
	BookingID      uuid.UUID
	Step           SettlementStep
	CompletedAt    *time.Time
	UpdatedAt      time.Time
}

func (c SettlementCursor) Completed() bool {
	return c.CompletedAt != nil
}

type NotificationLogEntry struct {
	DedupeKey  string
	RequestID  int64
	Recipient  string
	Kind       NotificationKind
	Delivered  bool
	MessageRef string
	CreatedAt  time.Time
}

type PrincipalKind string

const (
	PrincipalSalon    PrincipalKind = "salon"
	PrincipalReferrer PrincipalKind = "referrer"
	PrincipalClient   PrincipalKind = "client"
)

// Principal is the resolved identity behind a bearer credential. Salon and
// referrer principals carry an account id; client principals are scoped to
// the request their hold token was issued for.
type Principal struct {
	Kind      PrincipalKind
	AccountID uuid.UUID
	RequestID int64
	HoldToken string
}

func (p Principal) IsSalon(id uuid.UUID) bool {
	return p.Kind == PrincipalSalon && p.AccountID == id
}
