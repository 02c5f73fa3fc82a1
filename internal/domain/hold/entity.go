package hold

import (
	"errors"
	"time"

	"salon-broker/internal/domain/slot"
)

var (
	ErrExpired      = errors.New("hold expired")
	ErrWrongKind    = errors.New("hold kind mismatch")
	ErrWrongRequest = errors.New("hold issued for another request")
	ErrInvalidTTL   = errors.New("hold ttl must be positive")
	ErrEmptyToken   = errors.New("hold token cannot be empty")
)

type Kind string

const (
	// KindDecision gives a client time to pick among offered options.
	KindDecision Kind = "decision"
	// KindCheckout holds a single slot while payment is pending.
	KindCheckout Kind = "checkout"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	return k == KindDecision || k == KindCheckout
}

type Hold struct {
	token      string
	requestID  int64
	kind       Kind
	timeOption slot.TimeOption
	expiresAt  time.Time
	createdAt  time.Time
}

func NewDecision(token string, requestID int64, now time.Time, ttl time.Duration) (*Hold, error) {
	return newHold(token, requestID, KindDecision, "", now, ttl)
}

func NewCheckout(token string, requestID int64, opt slot.TimeOption, now time.Time, ttl time.Duration) (*Hold, error) {
	return newHold(token, requestID, KindCheckout, opt, now, ttl)
}

func newHold(token string, requestID int64, kind Kind, opt slot.TimeOption, now time.Time, ttl time.Duration) (*Hold, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	return &Hold{
		token:      token,
		requestID:  requestID,
		kind:       kind,
		timeOption: opt,
		expiresAt:  now.Add(ttl),
		createdAt:  now,
	}, nil
}

func Reconstruct(token string, requestID int64, kind Kind, opt slot.TimeOption, expiresAt, createdAt time.Time) *Hold {
	return &Hold{
		token:      token,
		requestID:  requestID,
		kind:       kind,
		timeOption: opt,
		expiresAt:  expiresAt,
		createdAt:  createdAt,
	}
}

// ExpiredAt treats the expiry instant itself as expired.
func (h *Hold) ExpiredAt(now time.Time) bool {
	return !now.Before(h.expiresAt)
}

// Validate checks the hold may act for requestID as the given kind.
// A requestID of zero skips the request check.
func (h *Hold) Validate(kind Kind, requestID int64, now time.Time) error {
	if h.kind != kind {
		return ErrWrongKind
	}
	if requestID != 0 && h.requestID != requestID {
		return ErrWrongRequest
	}
	if h.ExpiredAt(now) {
		return ErrExpired
	}
	return nil
}

func (h *Hold) Token() string               { return h.token }
func (h *Hold) RequestID() int64            { return h.requestID }
func (h *Hold) Kind() Kind                  { return h.kind }
func (h *Hold) TimeOption() slot.TimeOption { return h.timeOption }
func (h *Hold) ExpiresAt() time.Time        { return h.expiresAt }
func (h *Hold) CreatedAt() time.Time        { return h.createdAt }
