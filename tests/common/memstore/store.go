//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork. Transactions are
// serialized by one mutex and roll back on error; the slot predicates are
// the same domain rules the SQL implements.
package memstore

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"salon-broker/internal/domain/booking"
	"salon-broker/internal/domain/hold"
	"salon-broker/internal/domain/servicerequest"
	"salon-broker/internal/domain/slot"
	"salon-broker/internal/infra"
	"salon-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type slotKey struct {
	requestID int64
	option    slot.TimeOption
}

type credit struct {
	BookingID   uuid.UUID
	ReferrerID  uuid.UUID
	AmountCents int64
	CreatedAt   time.Time
}

type state struct {
	nextRequestID int64
	requests      map[int64]*servicerequest.ServiceRequest
	offers        map[string]servicerequest.Offer
	salons        map[uuid.UUID]shared.PartySnapshot
	referrers     map[uuid.UUID]shared.PartySnapshot
	totals        map[uuid.UUID]int64
	slots         map[slotKey]*slot.Reservation
	slotOrder     map[int64][]slot.TimeOption
	holds         map[string]*hold.Hold
	bookings      map[uuid.UUID]*booking.Booking
	credits       map[uuid.UUID]credit
	settlements   map[string]shared.SettlementCursor
	notifications map[string]shared.NotificationLogEntry
}

func (s *state) clone() *state {
	c := &state{
		nextRequestID: s.nextRequestID,
		requests:      make(map[int64]*servicerequest.ServiceRequest, len(s.requests)),
		offers:        maps.Clone(s.offers),
		salons:        maps.Clone(s.salons),
		referrers:     maps.Clone(s.referrers),
		totals:        maps.Clone(s.totals),
		slots:         make(map[slotKey]*slot.Reservation, len(s.slots)),
		slotOrder:     make(map[int64][]slot.TimeOption, len(s.slotOrder)),
		holds:         maps.Clone(s.holds),
		bookings:      make(map[uuid.UUID]*booking.Booking, len(s.bookings)),
		credits:       maps.Clone(s.credits),
		settlements:   maps.Clone(s.settlements),
		notifications: maps.Clone(s.notifications),
	}
	for k, v := range s.requests {
		c.requests[k] = cloneRequest(v, v.Status(), v.UpdatedAt())
	}
	for k, v := range s.slots {
		c.slots[k] = cloneSlot(v)
	}
	for k, v := range s.slotOrder {
		c.slotOrder[k] = append([]slot.TimeOption(nil), v...)
	}
	for k, v := range s.bookings {
		c.bookings[k] = cloneBooking(v)
	}
	return c
}

// Store implements shared.UnitOfWork.
type Store struct {
	mu    sync.Mutex
	state *state
	fail  map[string]error
	calls map[string]int
}

func New() *Store {
	return &Store{
		state: &state{
			nextRequestID: 1,
			requests:      map[int64]*servicerequest.ServiceRequest{},
			offers:        map[string]servicerequest.Offer{},
			salons:        map[uuid.UUID]shared.PartySnapshot{},
			referrers:     map[uuid.UUID]shared.PartySnapshot{},
			totals:        map[uuid.UUID]int64{},
			slots:         map[slotKey]*slot.Reservation{},
			slotOrder:     map[int64][]slot.TimeOption{},
			holds:         map[string]*hold.Hold{},
			bookings:      map[uuid.UUID]*booking.Booking{},
			credits:       map[uuid.UUID]credit{},
			settlements:   map[string]shared.SettlementCursor{},
			notifications: map[string]shared.NotificationLogEntry{},
		},
		fail:  map[string]error{},
		calls: map[string]int{},
	}
}

// FailOnce makes the next call to op return err. Ops are named
// "<Repo>.<Method>", e.g. "Earnings.Credit".
func (s *Store) FailOnce(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[op] = err
}

// Calls reports how many times op ran, failed attempts included.
func (s *Store) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(ctx, &tx{store: s}); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

// WithDB applies each write immediately; nothing is rolled back.
func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &tx{store: s})
}

// hit records a call and returns an injected failure, if any. Callers hold mu.
func (s *Store) hit(op string) error {
	s.calls[op]++
	if err, ok := s.fail[op]; ok {
		delete(s.fail, op)
		return infra.WrapRepoErr(op, err, infra.KindDBFailure)
	}
	return nil
}

// Seeding and inspection helpers lock independently of transactions.

func (s *Store) AddSalon(p shared.PartySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.salons[p.ID] = p
}

func (s *Store) AddReferrer(p shared.PartySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.referrers[p.ID] = p
}

func (s *Store) AddOffer(o servicerequest.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.offers[o.Code] = o
}

// PutRequest stores req under its own id.
func (s *Store) PutRequest(req *servicerequest.ServiceRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.requests[req.ID()] = req
	if req.ID() >= s.state.nextRequestID {
		s.state.nextRequestID = req.ID() + 1
	}
}

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.bookings[b.ID()] = cloneBooking(b)
}

func (s *Store) PutHold(h *hold.Hold) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.holds[h.Token()] = h
}

func (s *Store) PutSlots(requestID int64, opts ...slot.TimeOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range opts {
		k := slotKey{requestID, o}
		if _, ok := s.state.slots[k]; !ok {
			s.state.slotOrder[requestID] = append(s.state.slotOrder[requestID], o)
		}
		s.state.slots[k] = slot.NewOpen(requestID, o)
	}
}

func (s *Store) Request(id int64) *servicerequest.ServiceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.requests[id]
}

func (s *Store) Slot(requestID int64, opt slot.TimeOption) *slot.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.state.slots[slotKey{requestID, opt}]; ok {
		return cloneSlot(r)
	}
	return nil
}

func (s *Store) Hold(token string) *hold.Hold {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.holds[token]
}

func (s *Store) HoldsFor(requestID int64, kind hold.Kind) []*hold.Hold {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*hold.Hold
	for _, h := range s.state.holds {
		if h.RequestID() == requestID && h.Kind() == kind {
			out = append(out, h)
		}
	}
	return out
}

func (s *Store) Booking(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.state.bookings[id]; ok {
		return cloneBooking(b)
	}
	return nil
}

// Bookings returns every booking for requestID, oldest first.
func (s *Store) Bookings(requestID int64) []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*booking.Booking
	for _, b := range s.state.bookings {
		if b.RequestID() == requestID {
			out = append(out, cloneBooking(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (s *Store) ReferrerTotal(id uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.totals[id]
}

func (s *Store) CreditCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.credits)
}

func (s *Store) Settlement(ref string) (shared.SettlementCursor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.state.settlements[ref]
	return c, ok
}

func (s *Store) Notifications() []shared.NotificationLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]shared.NotificationLogEntry, 0, len(s.state.notifications))
	for _, n := range s.state.notifications {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DedupeKey < out[j].DedupeKey })
	return out
}

func cloneRequest(r *servicerequest.ServiceRequest, status servicerequest.Status, updatedAt time.Time) *servicerequest.ServiceRequest {
	return servicerequest.Reconstruct(
		r.ID(), r.ReferralCode(), r.SalonID(), r.ReferrerID(), r.ServiceName(), r.FeeCents(),
		r.Client(), r.PreferredDates(), status, r.CreatedAt(), updatedAt,
	)
}

func cloneSlot(r *slot.Reservation) *slot.Reservation {
	return slot.Reconstruct(r.RequestID(), r.TimeOption(), r.IsAvailable(),
		copyPtr(r.ReservedBy()), copyPtr(r.ReservedAt()), copyPtr(r.ExpiresAt()))
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.Reconstruct(b.ID(), b.Params(), b.Status(),
		copyPtr(b.RefundReason()), copyPtr(b.RefundRef()), b.CreatedAt(), b.UpdatedAt())
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
