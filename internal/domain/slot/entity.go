package slot

import "time"

// ConsumedHolder marks a reservation turned into a booking. Such a row carries
// no expiry and is never claimable or swept.
const ConsumedHolder = "confirmed_booking"

// Reasons reported by Availability.
const (
	ReasonNotOffered = "not_offered"
	ReasonHeld       = "held"
	ReasonBooked     = "booked"
)

type Availability struct {
	Available bool
	Reason    string
}

type Reservation struct {
	requestID   int64
	timeOption  TimeOption
	isAvailable bool
	reservedBy  *string
	reservedAt  *time.Time
	expiresAt   *time.Time
}

func NewOpen(requestID int64, opt TimeOption) *Reservation {
	return &Reservation{
		requestID:   requestID,
		timeOption:  opt,
		isAvailable: true,
	}
}

func Reconstruct(
	requestID int64,
	opt TimeOption,
	isAvailable bool,
	reservedBy *string,
	reservedAt, expiresAt *time.Time,
) *Reservation {
	return &Reservation{
		requestID:   requestID,
		timeOption:  opt,
		isAvailable: isAvailable,
		reservedBy:  reservedBy,
		reservedAt:  reservedAt,
		expiresAt:   expiresAt,
	}
}

// ClaimableAt is the read-time availability rule. A hold whose expiry has
// passed counts as free even before the sweeper resets the row.
func (r *Reservation) ClaimableAt(now time.Time) bool {
	if r.expiresAt != nil {
		return !r.expiresAt.After(now)
	}
	return r.isAvailable
}

func (r *Reservation) AvailabilityAt(now time.Time) Availability {
	if r.ClaimableAt(now) {
		return Availability{Available: true}
	}
	if r.IsConsumed() {
		return Availability{Reason: ReasonBooked}
	}
	return Availability{Reason: ReasonHeld}
}

func (r *Reservation) IsConsumed() bool {
	return r.reservedBy != nil && *r.reservedBy == ConsumedHolder
}

// HeldBy reports an unexpired hold owned by holder.
func (r *Reservation) HeldBy(holder string, now time.Time) bool {
	return !r.isAvailable &&
		r.reservedBy != nil && *r.reservedBy == holder &&
		r.expiresAt != nil && r.expiresAt.After(now)
}

// SweepableAt is true once the hold expiry is strictly in the past.
func (r *Reservation) SweepableAt(now time.Time) bool {
	return r.expiresAt != nil && r.expiresAt.Before(now)
}

// Reserve applies a hold when the row is claimable and reports whether it did.
func (r *Reservation) Reserve(holder string, now, expiresAt time.Time) bool {
	if !r.ClaimableAt(now) {
		return false
	}
	h := holder
	at := now
	exp := expiresAt
	r.isAvailable = false
	r.reservedBy = &h
	r.reservedAt = &at
	r.expiresAt = &exp
	return true
}

// Consume converts the holder's unexpired hold into a permanent booking mark.
func (r *Reservation) Consume(holder string, now time.Time) bool {
	if !r.HeldBy(holder, now) {
		return false
	}
	c := ConsumedHolder
	r.reservedBy = &c
	r.expiresAt = nil
	return true
}

func (r *Reservation) Release() {
	r.isAvailable = true
	r.reservedBy = nil
	r.reservedAt = nil
	r.expiresAt = nil
}

func (r *Reservation) RequestID() int64       { return r.requestID }
func (r *Reservation) TimeOption() TimeOption { return r.timeOption }
func (r *Reservation) IsAvailable() bool      { return r.isAvailable }
func (r *Reservation) ReservedBy() *string    { return r.reservedBy }
func (r *Reservation) ReservedAt() *time.Time { return r.reservedAt }
func (r *Reservation) ExpiresAt() *time.Time  { return r.expiresAt }
