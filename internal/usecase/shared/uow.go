package shared

import (
	"context"
	"time"

	"salon-broker/internal/domain/booking"
	"salon-broker/internal/domain/hold"
	"salon-broker/internal/domain/servicerequest"
	"salon-broker/internal/domain/slot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Repositories bound to the pool; each statement runs in its own implicit transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	ServiceRequests() ServiceRequestRepository
	Offers() OfferRepository
	Parties() PartyRepository
	Slots() SlotRepository
	Holds() HoldRepository
	Bookings() BookingRepository
	Earnings() EarningsRepository
	Settlements() SettlementRepository
	NotificationLogs() NotificationLogRepository
}

type ServiceRequestRepository interface {
	Create(ctx context.Context, req *servicerequest.ServiceRequest) (int64, error)
	FindByID(ctx context.Context, id int64) (*servicerequest.ServiceRequest, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*servicerequest.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id int64, status servicerequest.Status, now time.Time) error
	UpdatePreferredDates(ctx context.Context, id int64, preferredDates string, now time.Time) error
}

type OfferRepository interface {
	FindByCode(ctx context.Context, code string) (*servicerequest.Offer, error)
}

type PartyRepository interface {
	SalonByID(ctx context.Context, id uuid.UUID) (*PartySnapshot, error)
	ReferrerByID(ctx context.Context, id uuid.UUID) (*PartySnapshot, error)
}

// SlotRepository methods returning a count report rows affected by a
// conditional update; zero means the predicate did not hold.
type SlotRepository interface {
	ReplaceForRequest(ctx context.Context, requestID int64, options []slot.TimeOption) error
	Find(ctx context.Context, requestID int64, opt slot.TimeOption) (*slot.Reservation, error)
	ListByRequest(ctx context.Context, requestID int64) ([]*slot.Reservation, error)
	Reserve(ctx context.Context, requestID int64, opt slot.TimeOption, holder string, now, expiresAt time.Time) (int64, error)
	Consume(ctx context.Context, requestID int64, opt slot.TimeOption, holder string, now time.Time) (int64, error)
	Release(ctx context.Context, requestID int64, opt slot.TimeOption) error
	ReleaseHeldBy(ctx context.Context, requestID int64, opt slot.TimeOption, holder string) (int64, error)
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}

type HoldRepository interface {
	Create(ctx context.Context, h *hold.Hold) error
	FindByToken(ctx context.Context, token string) (*hold.Hold, error)
	// FindLiveByRequest returns the newest hold of kind that has not expired at now.
	FindLiveByRequest(ctx context.Context, requestID int64, kind hold.Kind, now time.Time) (*hold.Hold, error)
	Delete(ctx context.Context, token string) error
	DeleteByRequest(ctx context.Context, requestID int64, kind hold.Kind) error
	// DeleteExpiredBefore purges hold records whose expiry is older than cutoff.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindActiveByRequest(ctx context.Context, requestID int64) (*booking.Booking, error)
	// Update persists mutable state only if the stored status still equals expected.
	Update(ctx context.Context, b *booking.Booking, expected booking.Status) (int64, error)
}

type EarningsRepository interface {
	// Credit adds amount to the referrer total at most once per booking.
	Credit(ctx context.Context, bookingID, referrerID uuid.UUID, amountCents int64, now time.Time) (bool, error)
}

type SettlementRepository interface {
	Begin(ctx context.Context, c SettlementCursor) (bool, error)
	Find(ctx context.Context, transactionRef string) (*SettlementCursor, error)
	Advance(ctx context.Context, transactionRef string, step SettlementStep, now time.Time) error
}

// NotificationLogRepository claims a dedupe key before a send so each
// notification is attempted at most once.
type NotificationLogRepository interface {
	Claim(ctx context.Context, entry NotificationLogEntry) (bool, error)
	MarkDelivered(ctx context.Context, dedupeKey, messageRef string, now time.Time) error
}
