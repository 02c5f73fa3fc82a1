package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/commands"
)

const (
	SignatureHeader = "X-Webhook-Signature"

	EventCheckoutCompleted = "checkout.session.completed"
)

var (
	ErrInvalidSignature = errs.New("invalid webhook signature")
	ErrMalformedEvent   = errs.New("malformed payment event")
)

// VerifySignature checks a hex HMAC-SHA256 of body. A "sha256=" prefix is accepted.
func VerifySignature(secret string, body []byte, signature string) error {
	signature = strings.TrimPrefix(strings.TrimSpace(signature), "sha256=")
	if signature == "" {
		return ErrInvalidSignature
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}
	if !hmac.Equal(got, Sign(secret, body)) {
		return ErrInvalidSignature
	}
	return nil
}

func Sign(secret string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return mac.Sum(nil)
}

type Event struct {
	ID   string
	Type string
	// Checkout is set for checkout.session.completed events only.
	Checkout *CompletedCheckout
}

type CompletedCheckout struct {
	SessionID     string
	PaymentIntent string
	AmountTotal   int64
	Metadata      map[string]string
}

type rawEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type rawCheckoutSession struct {
	ID            string            `json:"id"`
	PaymentIntent string            `json:"payment_intent"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Metadata      map[string]string `json:"metadata"`
}

// ParseEvent decodes a processor event envelope. Unrelated event types parse
// without a Checkout payload so callers can acknowledge and drop them.
func ParseEvent(body []byte) (*Event, error) {
	var raw rawEvent
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode payment event"), ErrMalformedEvent)
	}
	if raw.Type == "" {
		return nil, errs.Mark(errs.New("payment event without type"), ErrMalformedEvent)
	}
	ev := &Event{ID: raw.ID, Type: raw.Type}
	if raw.Type != EventCheckoutCompleted {
		return ev, nil
	}

	var session rawCheckoutSession
	if err := json.Unmarshal(raw.Data.Object, &session); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode checkout session"), ErrMalformedEvent)
	}
	if session.PaymentStatus != "" && session.PaymentStatus != "paid" {
		// completed but unpaid (async methods); a later event carries the payment
		return ev, nil
	}
	ev.Checkout = &CompletedCheckout{
		SessionID:     session.ID,
		PaymentIntent: session.PaymentIntent,
		AmountTotal:   session.AmountTotal,
		Metadata:      session.Metadata,
	}
	return ev, nil
}

// PaymentCompleted converts a paid checkout into the settlement command input.
// ok is false for events that carry nothing to settle.
func (e *Event) PaymentCompleted() (ev commands.PaymentCompleted, ok bool, err error) {
	if e.Checkout == nil {
		return commands.PaymentCompleted{}, false, nil
	}
	ev, err = commands.NewPaymentCompleted(e.Checkout.PaymentIntent, e.Checkout.AmountTotal, e.Checkout.Metadata)
	if err != nil {
		return commands.PaymentCompleted{}, false, err
	}
	return ev, true, nil
}

// IsPermanent reports whether redelivering the event cannot help.
func IsPermanent(err error) bool {
	return errs.Is(err, ErrMalformedEvent) || errs.Is(err, errs.ErrInvalidPaymentEvent)
}
