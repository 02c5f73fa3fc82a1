package booking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid booking transition")
	ErrInvalidStatus     = errors.New("invalid booking status")
)

type Status string

const (
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmed           Status = "confirmed"
	StatusRescheduleOffered   Status = "reschedule_offered"
	StatusRefunded            Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Event string

const (
	EventSalonConfirms            Event = "salon_confirms"
	EventSalonOffersAlternatives  Event = "salon_offers_alternatives"
	EventClientAcceptsAlternative Event = "client_accepts_alternative"
	EventRefund                   Event = "refund"
)

// refunded is terminal.
var transitions = map[Status]map[Event]Status{
	StatusPendingConfirmation: {
		EventSalonConfirms:           StatusConfirmed,
		EventSalonOffersAlternatives: StatusRescheduleOffered,
		EventRefund:                  StatusRefunded,
	},
	StatusRescheduleOffered: {
		EventClientAcceptsAlternative: StatusPendingConfirmation,
		EventRefund:                   StatusRefunded,
	},
	StatusConfirmed: {
		EventRefund: StatusRefunded,
	},
	StatusRefunded: {},
}

// Next returns the state reached by applying e, or ErrInvalidTransition.
func (s Status) Next(e Event) (Status, error) {
	next, ok := transitions[s][e]
	if !ok {
		return "", fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, s)
	}
	return next, nil
}

// IsActive reports whether the booking still occupies its request.
func (s Status) IsActive() bool {
	return s != StatusRefunded
}
