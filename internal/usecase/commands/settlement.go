package commands

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"salon-broker/internal/domain/booking"
	"salon-broker/internal/domain/hold"
	"salon-broker/internal/domain/servicerequest"
	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/pkg/metrics"
	"salon-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentCompleted struct {
	TransactionRef  string
	RequestID       int64
	CheckoutToken   string
	AmountPaidCents int64
}

// NewPaymentCompleted builds an event from the capability's correlation metadata.
func NewPaymentCompleted(transactionRef string, amountPaidCents int64, metadata map[string]string) (PaymentCompleted, error) {
	ref := strings.TrimSpace(transactionRef)
	if ref == "" {
		return PaymentCompleted{}, errs.Mark(errs.New("missing transaction reference"), errs.ErrInvalidPaymentEvent)
	}
	requestID, err := strconv.ParseInt(metadata[MetaRequestID], 10, 64)
	if err != nil || requestID <= 0 {
		return PaymentCompleted{}, errs.Mark(errs.New("missing or malformed request_id metadata"), errs.ErrInvalidPaymentEvent)
	}
	tok := metadata[MetaCheckoutToken]
	if tok == "" {
		return PaymentCompleted{}, errs.Mark(errs.New("missing checkout_token metadata"), errs.ErrInvalidPaymentEvent)
	}
	return PaymentCompleted{
		TransactionRef:  ref,
		RequestID:       requestID,
		CheckoutToken:   tok,
		AmountPaidCents: amountPaidCents,
	}, nil
}

type SettlementOutcome string

const (
	OutcomeSettled SettlementOutcome = "settled"
	// OutcomeResumed finished a settlement interrupted by an earlier failure.
	OutcomeResumed   SettlementOutcome = "resumed"
	OutcomeDuplicate SettlementOutcome = "duplicate"
	// OutcomeStale means no live checkout hold matched; acknowledged and dropped.
	OutcomeStale SettlementOutcome = "stale"
)

type SettlementResult struct {
	Outcome   SettlementOutcome
	BookingID uuid.UUID
}

type RefundResult struct {
	BookingID uuid.UUID
	RefundRef string
}

type SettlementCommands interface {
	OnPaymentCompleted(ctx context.Context, ev PaymentCompleted) (*SettlementResult, error)
	OnRefundRequested(ctx context.Context, principal shared.Principal, bookingID uuid.UUID, reason string) (*RefundResult, error)
}

var (
	errStale        = errs.New("stale payment event")
	errAlreadyBegun = errs.New("settlement already begun")
)

type settlementCommandsImpl struct {
	uow      shared.UnitOfWork
	payments shared.PaymentGateway
	notify   *dispatcher
	clock    clock.Clock
	policy   Policy
	logger   *slog.Logger
}

func NewSettlementCommands(
	uow shared.UnitOfWork,
	payments shared.PaymentGateway,
	notifier shared.Notifier,
	clk clock.Clock,
	policy Policy,
	logger *slog.Logger,
) SettlementCommands {
	return &settlementCommandsImpl{
		uow:      uow,
		payments: payments,
		notify:   newDispatcher(notifier, uow, clk, logger),
		clock:    clk,
		policy:   policy,
		logger:   logger,
	}
}

// OnPaymentCompleted settles a captured payment. Every step is idempotent and
// recorded on a cursor keyed by transaction reference, so redelivery after a
// crash resumes where the previous attempt stopped.
func (s *settlementCommandsImpl) OnPaymentCompleted(ctx context.Context, ev PaymentCompleted) (*SettlementResult, error) {
	log := s.logger.With("transaction_ref", ev.TransactionRef, "request_id", ev.RequestID)

	cursor, err := s.findCursor(ctx, ev.TransactionRef)
	if err != nil {
		return nil, err
	}

	outcome := OutcomeResumed
	if cursor == nil {
		cursor, err = s.recordBooking(ctx, ev)
		switch {
		case errors.Is(err, errStale):
			log.Warn("stale payment event acknowledged", "reason", err.Error())
			metrics.ObserveSettlement(string(OutcomeStale))
			return &SettlementResult{Outcome: OutcomeStale}, nil
		case errors.Is(err, errAlreadyBegun):
			if cursor, err = s.findCursor(ctx, ev.TransactionRef); err != nil {
				return nil, err
			}
			if cursor == nil {
				return nil, errs.Mark(errs.New("settlement cursor vanished"), errs.ErrSettlementInterrupted)
			}
		case err != nil:
			return nil, err
		default:
			outcome = OutcomeSettled
		}
	}

	if cursor.Completed() {
		log.Info("duplicate payment event acknowledged", "booking_id", cursor.BookingID)
		metrics.ObserveSettlement(string(OutcomeDuplicate))
		return &SettlementResult{Outcome: OutcomeDuplicate, BookingID: cursor.BookingID}, nil
	}

	if err := s.finish(ctx, cursor); err != nil {
		return nil, errs.Mark(err, errs.ErrSettlementInterrupted)
	}

	log.Info("payment settled", "booking_id", cursor.BookingID, "outcome", outcome)
	metrics.ObserveSettlement(string(outcome))
	return &SettlementResult{Outcome: outcome, BookingID: cursor.BookingID}, nil
}

func (s *settlementCommandsImpl) findCursor(ctx context.Context, ref string) (*shared.SettlementCursor, error) {
	var cursor *shared.SettlementCursor
	err := s.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		cursor, err = tx.Settlements().Find(ctx, ref)
		return err
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, storageErr(err)
	}
	return cursor, nil
}

// recordBooking validates the checkout hold, creates the booking and consumes
// the slot in one transaction. Consuming the slot here means a hold lapsing
// later in settlement cannot be re-reserved by someone else.
func (s *settlementCommandsImpl) recordBooking(ctx context.Context, ev PaymentCompleted) (*shared.SettlementCursor, error) {
	var cursor *shared.SettlementCursor
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := s.clock.Now()

		req, err := tx.ServiceRequests().FindByIDForUpdate(ctx, ev.RequestID)
		if err != nil {
			if isNotFound(err) {
				return errs.Wrap(errStale, "service request not found")
			}
			return storageErr(err)
		}

		h, err := tx.Holds().FindByToken(ctx, ev.CheckoutToken)
		if err != nil {
			if isNotFound(err) {
				return errs.Wrap(errStale, "checkout hold not found")
			}
			return storageErr(err)
		}
		if err := h.Validate(hold.KindCheckout, req.ID(), now); err != nil {
			return errs.Wrap(errStale, err.Error())
		}

		if _, err := tx.Bookings().FindActiveByRequest(ctx, req.ID()); err == nil {
			return errs.Wrap(errStale, "request already booked")
		} else if !isNotFound(err) {
			return storageErr(err)
		}

		split, err := s.policy.Rates.Split(req.FeeCents())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if ev.AmountPaidCents != 0 && ev.AmountPaidCents != req.FeeCents() {
			s.logger.Warn("paid amount differs from service fee",
				"transaction_ref", ev.TransactionRef,
				"paid_cents", ev.AmountPaidCents,
				"fee_cents", req.FeeCents())
		}

		b, err := booking.New(booking.Params{
			RequestID:       req.ID(),
			SalonID:         req.SalonID(),
			ReferrerID:      req.ReferrerID(),
			ClientName:      req.Client().Name(),
			ClientEmail:     req.Client().Email(),
			ServiceName:     req.ServiceName(),
			AppointmentTime: h.TimeOption(),
			TransactionRef:  ev.TransactionRef,
			Split:           split,
		}, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		cursor = &shared.SettlementCursor{
			TransactionRef: ev.TransactionRef,
			RequestID:      req.ID(),
			BookingID:      b.ID(),
			Step:           shared.StepBookingRecorded,
			UpdatedAt:      now,
		}
		begun, err := tx.Settlements().Begin(ctx, *cursor)
		if err != nil {
			return storageErr(err)
		}
		if !begun {
			return errAlreadyBegun
		}

		n, err := tx.Slots().Consume(ctx, req.ID(), h.TimeOption(), h.Token(), now)
		if err != nil {
			return storageErr(err)
		}
		if n == 0 {
			return errs.Wrap(errStale, "slot no longer held by checkout token")
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			if isDuplicate(err) {
				return errs.Wrap(errStale, "booking already recorded")
			}
			return storageErr(err)
		}
		if err := tx.Holds().Delete(ctx, h.Token()); err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cursor, nil
}

// finish runs the remaining steps in order, advancing the cursor after each.
func (s *settlementCommandsImpl) finish(ctx context.Context, cursor *shared.SettlementCursor) error {
	var b *booking.Booking
	err := s.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = tx.Bookings().FindByID(ctx, cursor.BookingID)
		return err
	})
	if err != nil {
		return storageErr(err)
	}

	if !cursor.Step.Reached(shared.StepRequestConfirmed) {
		err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			now := s.clock.Now()
			req, err := tx.ServiceRequests().FindByID(ctx, cursor.RequestID)
			if err != nil {
				return storageErr(err)
			}
			if req.Status() != servicerequest.StatusConfirmed {
				if err := tx.ServiceRequests().UpdateStatus(ctx, cursor.RequestID, servicerequest.StatusConfirmed, now); err != nil {
					return storageErr(err)
				}
			}
			return tx.Settlements().Advance(ctx, cursor.TransactionRef, shared.StepRequestConfirmed, now)
		})
		if err != nil {
			return err
		}
		cursor.Step = shared.StepRequestConfirmed
	}

	if !cursor.Step.Reached(shared.StepEarningsCredited) {
		err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			now := s.clock.Now()
			credited, err := tx.Earnings().Credit(ctx, b.ID(), b.ReferrerID(), b.Split().ReferrerCommissionCents, now)
			if err != nil {
				return storageErr(err)
			}
			if !credited {
				s.logger.Info("referrer already credited", "booking_id", b.ID())
			}
			return tx.Settlements().Advance(ctx, cursor.TransactionRef, shared.StepEarningsCredited, now)
		})
		if err != nil {
			return err
		}
		cursor.Step = shared.StepEarningsCredited
	}

	if !cursor.Step.Reached(shared.StepNotified) {
		s.notifySettled(ctx, cursor.TransactionRef, b)
		now := s.clock.Now()
		err := s.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Settlements().Advance(ctx, cursor.TransactionRef, shared.StepNotified, now)
		})
		if err != nil {
			return storageErr(err)
		}
		cursor.Step = shared.StepNotified
		cursor.CompletedAt = &now
	}
	return nil
}

func (s *settlementCommandsImpl) notifySettled(ctx context.Context, ref string, b *booking.Booking) {
	var salon, referrer *shared.PartySnapshot
	err := s.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if salon, err = tx.Parties().SalonByID(ctx, b.SalonID()); err != nil && !isNotFound(err) {
			return err
		}
		if referrer, err = tx.Parties().ReferrerByID(ctx, b.ReferrerID()); err != nil && !isNotFound(err) {
			return err
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("failed to load parties for settlement notifications", "booking_id", b.ID(), "error", err)
	}

	split := b.Split()
	base := map[string]any{
		"bookingId":       b.ID().String(),
		"requestId":       b.RequestID(),
		"clientName":      b.ClientName(),
		"serviceName":     b.ServiceName(),
		"appointmentTime": b.AppointmentTime().String(),
	}
	with := func(extra map[string]any) map[string]any {
		out := make(map[string]any, len(base)+len(extra))
		for k, v := range base {
			out[k] = v
		}
		for k, v := range extra {
			out[k] = v
		}
		return out
	}

	s.notify.send(ctx, notification{
		dedupeKey: "settlement:" + ref + ":client",
		requestID: b.RequestID(),
		recipient: b.ClientEmail(),
		kind:      shared.NotifyAwaitingConfirmation,
		data:      with(map[string]any{"amountPaid": booking.FormatCents(split.FeeCents)}),
	})
	if salon != nil {
		s.notify.send(ctx, notification{
			dedupeKey: "settlement:" + ref + ":salon",
			requestID: b.RequestID(),
			recipient: salon.Email,
			kind:      shared.NotifySalonConfirmationNeeded,
			data: with(map[string]any{
				"salonName":     salon.Name,
				"salonNet":      booking.FormatCents(split.SalonNetCents),
				"respondWithin": s.policy.SalonResponseWindow.String(),
			}),
		})
	}
	if referrer != nil {
		s.notify.send(ctx, notification{
			dedupeKey: "settlement:" + ref + ":referrer",
			requestID: b.RequestID(),
			recipient: referrer.Email,
			kind:      shared.NotifyCommissionEarned,
			data: with(map[string]any{
				"referrerName": referrer.Name,
				"commission":   booking.FormatCents(split.ReferrerCommissionCents),
			}),
		})
	}
}

// OnRefundRequested refunds through the payment capability first, then
// records the refund and frees the slot. The booking id doubles as the
// capability idempotency key so a retried request cannot refund twice.
// Referrer earnings already credited are kept.
func (s *settlementCommandsImpl) OnRefundRequested(
	ctx context.Context,
	principal shared.Principal,
	bookingID uuid.UUID,
	reason string,
) (*RefundResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errs.ErrRefundReasonRequired
	}

	var b *booking.Booking
	err := s.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = loadOwnedBooking(ctx, tx, principal, bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := b.CanRefund(); err != nil {
		return nil, transitionErr(err)
	}

	started := time.Now()
	refundRef, err := s.payments.Refund(ctx, shared.RefundRequest{
		TransactionRef: b.TransactionRef(),
		AmountCents:    b.Split().FeeCents,
		Reason:         reason,
		IdempotencyKey: "refund-" + b.ID().String(),
	})
	metrics.ObservePaymentCall("refund", started, err)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentCapability)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := s.clock.Now()
		current, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return storageErr(err)
		}
		from := current.Status()
		if err := current.Refund(reason, refundRef, now); err != nil {
			return transitionErr(err)
		}
		if err := saveTransition(ctx, tx, current, from); err != nil {
			return err
		}
		if err := tx.ServiceRequests().UpdateStatus(ctx, current.RequestID(), servicerequest.StatusRefunded, now); err != nil {
			return storageErr(err)
		}
		if err := tx.Slots().Release(ctx, current.RequestID(), current.AppointmentTime()); err != nil {
			return storageErr(err)
		}
		b = current
		return nil
	})
	if err != nil {
		s.logger.Error("refund captured but not recorded",
			"booking_id", bookingID, "refund_ref", refundRef, "error", err)
		return nil, err
	}

	s.notify.send(ctx, notification{
		dedupeKey: "refund:" + b.ID().String(),
		requestID: b.RequestID(),
		recipient: b.ClientEmail(),
		kind:      shared.NotifyRefundProcessed,
		data: map[string]any{
			"bookingId":   b.ID().String(),
			"clientName":  b.ClientName(),
			"serviceName": b.ServiceName(),
			"amount":      booking.FormatCents(b.Split().FeeCents),
			"reason":      reason,
		},
	})

	return &RefundResult{BookingID: b.ID(), RefundRef: refundRef}, nil
}
