//go:build unit || e2e

package memstore

import (
	"context"
	"time"

	"salon-broker/internal/domain/booking"
	"salon-broker/internal/domain/hold"
	"salon-broker/internal/domain/servicerequest"
	"salon-broker/internal/domain/slot"
	"salon-broker/internal/infra"
	"salon-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type tx struct{ store *Store }

func (t *tx) ServiceRequests() shared.ServiceRequestRepository   { return requestRepo{t.store} }
func (t *tx) Offers() shared.OfferRepository                     { return offerRepo{t.store} }
func (t *tx) Parties() shared.PartyRepository                    { return partyRepo{t.store} }
func (t *tx) Slots() shared.SlotRepository                       { return slotRepo{t.store} }
func (t *tx) Holds() shared.HoldRepository                       { return holdRepo{t.store} }
func (t *tx) Bookings() shared.BookingRepository                 { return bookingRepo{t.store} }
func (t *tx) Earnings() shared.EarningsRepository                { return earningsRepo{t.store} }
func (t *tx) Settlements() shared.SettlementRepository           { return settlementRepo{t.store} }
func (t *tx) NotificationLogs() shared.NotificationLogRepository { return notificationRepo{t.store} }

type requestRepo struct{ s *Store }

func (r requestRepo) Create(_ context.Context, req *servicerequest.ServiceRequest) (int64, error) {
	if err := r.s.hit("ServiceRequests.Create"); err != nil {
		return 0, err
	}
	st := r.s.state
	id := st.nextRequestID
	st.nextRequestID++
	st.requests[id] = servicerequest.Reconstruct(
		id, req.ReferralCode(), req.SalonID(), req.ReferrerID(), req.ServiceName(), req.FeeCents(),
		req.Client(), req.PreferredDates(), req.Status(), req.CreatedAt(), req.UpdatedAt(),
	)
	return id, nil
}

func (r requestRepo) FindByID(_ context.Context, id int64) (*servicerequest.ServiceRequest, error) {
	if err := r.s.hit("ServiceRequests.FindByID"); err != nil {
		return nil, err
	}
	req, ok := r.s.state.requests[id]
	if !ok {
		return nil, infra.NotFound("service request not found")
	}
	return cloneRequest(req, req.Status(), req.UpdatedAt()), nil
}

func (r requestRepo) FindByIDForUpdate(ctx context.Context, id int64) (*servicerequest.ServiceRequest, error) {
	return r.FindByID(ctx, id)
}

func (r requestRepo) UpdateStatus(_ context.Context, id int64, status servicerequest.Status, now time.Time) error {
	if err := r.s.hit("ServiceRequests.UpdateStatus"); err != nil {
		return err
	}
	req, ok := r.s.state.requests[id]
	if !ok {
		return infra.NotFound("service request not found")
	}
	r.s.state.requests[id] = cloneRequest(req, status, now)
	return nil
}

func (r requestRepo) UpdatePreferredDates(_ context.Context, id int64, preferredDates string, now time.Time) error {
	if err := r.s.hit("ServiceRequests.UpdatePreferredDates"); err != nil {
		return err
	}
	req, ok := r.s.state.requests[id]
	if !ok {
		return infra.NotFound("service request not found")
	}
	r.s.state.requests[id] = servicerequest.Reconstruct(
		req.ID(), req.ReferralCode(), req.SalonID(), req.ReferrerID(), req.ServiceName(), req.FeeCents(),
		req.Client(), preferredDates, req.Status(), req.CreatedAt(), now,
	)
	return nil
}

type offerRepo struct{ s *Store }

func (r offerRepo) FindByCode(_ context.Context, code string) (*servicerequest.Offer, error) {
	if err := r.s.hit("Offers.FindByCode"); err != nil {
		return nil, err
	}
	o, ok := r.s.state.offers[code]
	if !ok {
		return nil, infra.NotFound("referral offer not found")
	}
	return &o, nil
}

type partyRepo struct{ s *Store }

func (r partyRepo) SalonByID(_ context.Context, id uuid.UUID) (*shared.PartySnapshot, error) {
	p, ok := r.s.state.salons[id]
	if !ok {
		return nil, infra.NotFound("salon not found")
	}
	return &p, nil
}

func (r partyRepo) ReferrerByID(_ context.Context, id uuid.UUID) (*shared.PartySnapshot, error) {
	p, ok := r.s.state.referrers[id]
	if !ok {
		return nil, infra.NotFound("referrer not found")
	}
	return &p, nil
}

type slotRepo struct{ s *Store }

func (r slotRepo) ReplaceForRequest(_ context.Context, requestID int64, options []slot.TimeOption) error {
	if err := r.s.hit("Slots.ReplaceForRequest"); err != nil {
		return err
	}
	st := r.s.state
	for _, o := range st.slotOrder[requestID] {
		delete(st.slots, slotKey{requestID, o})
	}
	st.slotOrder[requestID] = append([]slot.TimeOption(nil), options...)
	for _, o := range options {
		st.slots[slotKey{requestID, o}] = slot.NewOpen(requestID, o)
	}
	return nil
}

func (r slotRepo) Find(_ context.Context, requestID int64, opt slot.TimeOption) (*slot.Reservation, error) {
	res, ok := r.s.state.slots[slotKey{requestID, opt}]
	if !ok {
		return nil, infra.NotFound("slot not found")
	}
	return cloneSlot(res), nil
}

func (r slotRepo) ListByRequest(_ context.Context, requestID int64) ([]*slot.Reservation, error) {
	var out []*slot.Reservation
	for _, o := range r.s.state.slotOrder[requestID] {
		out = append(out, cloneSlot(r.s.state.slots[slotKey{requestID, o}]))
	}
	return out, nil
}

func (r slotRepo) Reserve(_ context.Context, requestID int64, opt slot.TimeOption, holder string, now, expiresAt time.Time) (int64, error) {
	if err := r.s.hit("Slots.Reserve"); err != nil {
		return 0, err
	}
	res, ok := r.s.state.slots[slotKey{requestID, opt}]
	if !ok || !res.Reserve(holder, now, expiresAt) {
		return 0, nil
	}
	return 1, nil
}

func (r slotRepo) Consume(_ context.Context, requestID int64, opt slot.TimeOption, holder string, now time.Time) (int64, error) {
	if err := r.s.hit("Slots.Consume"); err != nil {
		return 0, err
	}
	res, ok := r.s.state.slots[slotKey{requestID, opt}]
	if !ok || !res.Consume(holder, now) {
		return 0, nil
	}
	return 1, nil
}

func (r slotRepo) Release(_ context.Context, requestID int64, opt slot.TimeOption) error {
	if err := r.s.hit("Slots.Release"); err != nil {
		return err
	}
	if res, ok := r.s.state.slots[slotKey{requestID, opt}]; ok {
		res.Release()
	}
	return nil
}

func (r slotRepo) ReleaseHeldBy(_ context.Context, requestID int64, opt slot.TimeOption, holder string) (int64, error) {
	res, ok := r.s.state.slots[slotKey{requestID, opt}]
	if !ok || res.ReservedBy() == nil || *res.ReservedBy() != holder {
		return 0, nil
	}
	res.Release()
	return 1, nil
}

func (r slotRepo) SweepExpired(_ context.Context, now time.Time) (int64, error) {
	if err := r.s.hit("Slots.SweepExpired"); err != nil {
		return 0, err
	}
	var n int64
	for _, res := range r.s.state.slots {
		if res.SweepableAt(now) {
			res.Release()
			n++
		}
	}
	return n, nil
}

type holdRepo struct{ s *Store }

func (r holdRepo) Create(_ context.Context, h *hold.Hold) error {
	if err := r.s.hit("Holds.Create"); err != nil {
		return err
	}
	if _, ok := r.s.state.holds[h.Token()]; ok {
		return infra.WrapRepoErr("hold exists", nil, infra.KindDuplicateKey)
	}
	r.s.state.holds[h.Token()] = h
	return nil
}

func (r holdRepo) FindByToken(_ context.Context, token string) (*hold.Hold, error) {
	h, ok := r.s.state.holds[token]
	if !ok {
		return nil, infra.NotFound("hold not found")
	}
	return h, nil
}

func (r holdRepo) FindLiveByRequest(_ context.Context, requestID int64, kind hold.Kind, now time.Time) (*hold.Hold, error) {
	var live *hold.Hold
	for _, h := range r.s.state.holds {
		if h.RequestID() != requestID || h.Kind() != kind || h.ExpiredAt(now) {
			continue
		}
		if live == nil || h.CreatedAt().After(live.CreatedAt()) {
			live = h
		}
	}
	if live == nil {
		return nil, infra.NotFound("no live hold for request")
	}
	return live, nil
}

func (r holdRepo) Delete(_ context.Context, token string) error {
	delete(r.s.state.holds, token)
	return nil
}

func (r holdRepo) DeleteByRequest(_ context.Context, requestID int64, kind hold.Kind) error {
	for tok, h := range r.s.state.holds {
		if h.RequestID() == requestID && h.Kind() == kind {
			delete(r.s.state.holds, tok)
		}
	}
	return nil
}

func (r holdRepo) DeleteExpiredBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for tok, h := range r.s.state.holds {
		if h.ExpiresAt().Before(cutoff) {
			delete(r.s.state.holds, tok)
			n++
		}
	}
	return n, nil
}

type bookingRepo struct{ s *Store }

// Create enforces the unique transaction ref and the one-active-booking rule.
func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.s.hit("Bookings.Create"); err != nil {
		return err
	}
	for _, existing := range r.s.state.bookings {
		if existing.TransactionRef() == b.TransactionRef() ||
			(existing.RequestID() == b.RequestID() && existing.Status().IsActive()) {
			return infra.WrapRepoErr("booking exists", nil, infra.KindDuplicateKey)
		}
	}
	r.s.state.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.state.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	return cloneBooking(b), nil
}

func (r bookingRepo) FindActiveByRequest(_ context.Context, requestID int64) (*booking.Booking, error) {
	for _, b := range r.s.state.bookings {
		if b.RequestID() == requestID && b.Status().IsActive() {
			return cloneBooking(b), nil
		}
	}
	return nil, infra.NotFound("active booking not found")
}

func (r bookingRepo) Update(_ context.Context, b *booking.Booking, expected booking.Status) (int64, error) {
	if err := r.s.hit("Bookings.Update"); err != nil {
		return 0, err
	}
	current, ok := r.s.state.bookings[b.ID()]
	if !ok || current.Status() != expected {
		return 0, nil
	}
	r.s.state.bookings[b.ID()] = cloneBooking(b)
	return 1, nil
}

type earningsRepo struct{ s *Store }

func (r earningsRepo) Credit(_ context.Context, bookingID, referrerID uuid.UUID, amountCents int64, now time.Time) (bool, error) {
	if err := r.s.hit("Earnings.Credit"); err != nil {
		return false, err
	}
	if _, ok := r.s.state.credits[bookingID]; ok {
		return false, nil
	}
	r.s.state.credits[bookingID] = credit{BookingID: bookingID, ReferrerID: referrerID, AmountCents: amountCents, CreatedAt: now}
	r.s.state.totals[referrerID] += amountCents
	return true, nil
}

type settlementRepo struct{ s *Store }

func (r settlementRepo) Begin(_ context.Context, c shared.SettlementCursor) (bool, error) {
	if err := r.s.hit("Settlements.Begin"); err != nil {
		return false, err
	}
	if _, ok := r.s.state.settlements[c.TransactionRef]; ok {
		return false, nil
	}
	r.s.state.settlements[c.TransactionRef] = c
	return true, nil
}

func (r settlementRepo) Find(_ context.Context, ref string) (*shared.SettlementCursor, error) {
	c, ok := r.s.state.settlements[ref]
	if !ok {
		return nil, infra.NotFound("settlement not found")
	}
	return &c, nil
}

func (r settlementRepo) Advance(_ context.Context, ref string, step shared.SettlementStep, now time.Time) error {
	if err := r.s.hit("Settlements.Advance"); err != nil {
		return err
	}
	c, ok := r.s.state.settlements[ref]
	if !ok {
		return infra.NotFound("settlement not found")
	}
	c.Step = step
	c.UpdatedAt = now
	if step == shared.StepNotified {
		at := now
		c.CompletedAt = &at
	}
	r.s.state.settlements[ref] = c
	return nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) Claim(_ context.Context, e shared.NotificationLogEntry) (bool, error) {
	if err := r.s.hit("NotificationLogs.Claim"); err != nil {
		return false, err
	}
	if _, ok := r.s.state.notifications[e.DedupeKey]; ok {
		return false, nil
	}
	r.s.state.notifications[e.DedupeKey] = e
	return true, nil
}

func (r notificationRepo) MarkDelivered(_ context.Context, key, messageRef string, _ time.Time) error {
	e, ok := r.s.state.notifications[key]
	if !ok {
		return infra.NotFound("notification log not found")
	}
	e.Delivered = true
	e.MessageRef = messageRef
	r.s.state.notifications[key] = e
	return nil
}
