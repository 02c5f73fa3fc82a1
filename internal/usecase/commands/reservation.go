package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"salon-broker/internal/domain/booking"
	"salon-broker/internal/domain/hold"
	"salon-broker/internal/domain/servicerequest"
	"salon-broker/internal/domain/slot"
	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/pkg/metrics"
	"salon-broker/internal/pkg/token"
	"salon-broker/internal/usecase/shared"
)

// Metadata keys attached to charges and expected back on completion events.
const (
	MetaRequestID     = "request_id"
	MetaCheckoutToken = "checkout_token"
)

type DecisionHold struct {
	RequestID   int64
	HourToken   string
	ExpiresAt   time.Time
	TimeOptions []string
}

type CheckoutSession struct {
	RequestID     int64
	CheckoutToken string
	TimeOption    string
	ExpiresAt     time.Time
	CheckoutURL   string
	// RequiresPayment is false when the client is moving an already paid
	// booking to an alternative time.
	RequiresPayment bool
}

type ReservationCommands interface {
	RespondWithTimeOptions(ctx context.Context, principal shared.Principal, requestID int64, options []string) (*DecisionHold, error)
	HoldForDecision(ctx context.Context, requestID int64, options []string) (*DecisionHold, error)
	SelectTime(ctx context.Context, requestID int64, hourToken, option string) (*CheckoutSession, error)
	Abandon(ctx context.Context, checkoutToken string) error
	CancelRequest(ctx context.Context, requestID int64, clientToken string) error
	RequestReschedule(ctx context.Context, requestID int64, clientToken, preferredDates string) error
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	payments shared.PaymentGateway
	holds    *decisionIssuer
	notify   *dispatcher
	clock    clock.Clock
	policy   Policy
	logger   *slog.Logger
}

// decisionIssuer mints decision holds and tells the client about them.
type decisionIssuer struct {
	uow    shared.UnitOfWork
	notify *dispatcher
	clock  clock.Clock
	policy Policy
}

func newDecisionIssuer(uow shared.UnitOfWork, notify *dispatcher, clk clock.Clock, policy Policy) *decisionIssuer {
	return &decisionIssuer{uow: uow, notify: notify, clock: clk, policy: policy}
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	payments shared.PaymentGateway,
	notifier shared.Notifier,
	clk clock.Clock,
	policy Policy,
	logger *slog.Logger,
) ReservationCommands {
	notify := newDispatcher(notifier, uow, clk, logger)
	return &reservationCommandsImpl{
		uow:      uow,
		payments: payments,
		holds:    newDecisionIssuer(uow, notify, clk, policy),
		notify:   notify,
		clock:    clk,
		policy:   policy,
		logger:   logger,
	}
}

func (r *reservationCommandsImpl) RespondWithTimeOptions(
	ctx context.Context,
	principal shared.Principal,
	requestID int64,
	options []string,
) (*DecisionHold, error) {
	opts, err := slot.NewTimeOptions(options)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.ServiceRequests().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			if isNotFound(err) {
				return errs.Mark(err, errs.ErrServiceRequestNotFound)
			}
			return storageErr(err)
		}
		if !principal.IsSalon(req.SalonID()) {
			return errs.ErrForbidden
		}
		if err := req.EnsureAcceptsTimeOptions(); err != nil {
			return errs.Mark(err, errs.ErrRequestClosed)
		}
		if err := offerSlotsTx(ctx, tx, requestID, opts); err != nil {
			return err
		}
		answered, err := answersClientTx(ctx, tx, req)
		if err != nil {
			return err
		}
		if answered {
			if err := tx.ServiceRequests().UpdateStatus(ctx, requestID, servicerequest.StatusResponded, r.clock.Now()); err != nil {
				return storageErr(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.holds.issue(ctx, requestID, opts, shared.NotifyTimeOptionsOffered)
}

// answersClientTx reports whether a salon response moves the request to
// responded: a new request, or a client's ask for other times. A salon's own
// reschedule of a paid booking keeps its status.
func answersClientTx(ctx context.Context, tx shared.Tx, req *servicerequest.ServiceRequest) (bool, error) {
	switch req.Status() {
	case servicerequest.StatusPending:
		return true, nil
	case servicerequest.StatusRescheduleRequested:
		_, err := tx.Bookings().FindActiveByRequest(ctx, req.ID())
		if err == nil {
			return false, nil
		}
		if isNotFound(err) {
			return true, nil
		}
		return false, storageErr(err)
	default:
		return false, nil
	}
}

func (r *reservationCommandsImpl) HoldForDecision(ctx context.Context, requestID int64, options []string) (*DecisionHold, error) {
	opts, err := slot.NewTimeOptions(options)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return r.holds.issue(ctx, requestID, opts, shared.NotifyTimeOptionsOffered)
}

// issue supersedes any earlier decision token for the request.
func (r *decisionIssuer) issue(
	ctx context.Context,
	requestID int64,
	opts []slot.TimeOption,
	kind shared.NotificationKind,
) (*DecisionHold, error) {
	tok, err := token.New(token.PrefixDecision)
	if err != nil {
		return nil, err
	}
	h, err := hold.NewDecision(tok, requestID, r.clock.Now(), r.policy.DecisionHoldTTL)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var req *servicerequest.ServiceRequest
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		req, err = tx.ServiceRequests().FindByID(ctx, requestID)
		if err != nil {
			if isNotFound(err) {
				return errs.Mark(err, errs.ErrServiceRequestNotFound)
			}
			return storageErr(err)
		}
		if err := tx.Holds().DeleteByRequest(ctx, requestID, hold.KindDecision); err != nil {
			return storageErr(err)
		}
		if err := tx.Holds().Create(ctx, h); err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ObserveHoldIssued(hold.KindDecision.String())

	labels := slot.Strings(opts)
	r.notify.send(ctx, notification{
		dedupeKey: "decision:" + tok,
		requestID: requestID,
		recipient: req.Client().Email(),
		kind:      kind,
		data: map[string]any{
			"requestId":   requestID,
			"clientName":  req.Client().Name(),
			"serviceName": req.ServiceName(),
			"timeOptions": labels,
			"hourToken":   tok,
			"expiresAt":   h.ExpiresAt(),
		},
	})

	return &DecisionHold{
		RequestID:   requestID,
		HourToken:   tok,
		ExpiresAt:   h.ExpiresAt(),
		TimeOptions: labels,
	}, nil
}

func (r *reservationCommandsImpl) SelectTime(ctx context.Context, requestID int64, hourToken, option string) (*CheckoutSession, error) {
	opt, err := slot.NewTimeOption(option)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	checkoutToken, err := token.New(token.PrefixCheckout)
	if err != nil {
		return nil, err
	}

	var (
		req        *servicerequest.ServiceRequest
		held       *SlotHold
		reschedule bool
	)
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()

		decision, err := tx.Holds().FindByToken(ctx, hourToken)
		if err != nil {
			if isNotFound(err) {
				return errs.Mark(err, errs.ErrHoldInvalid)
			}
			return storageErr(err)
		}
		if err := decision.Validate(hold.KindDecision, requestID, now); err != nil {
			return holdErr(err)
		}

		req, err = tx.ServiceRequests().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			if isNotFound(err) {
				return errs.Mark(err, errs.ErrServiceRequestNotFound)
			}
			return storageErr(err)
		}
		if err := req.EnsureAcceptsTimeOptions(); err != nil {
			return errs.Mark(err, errs.ErrRequestClosed)
		}

		active, err := tx.Bookings().FindActiveByRequest(ctx, requestID)
		switch {
		case err == nil:
			if active.Status() != booking.StatusRescheduleOffered {
				return errs.ErrRequestClosed
			}
			reschedule = true
		case !isNotFound(err):
			return storageErr(err)
		}

		// One live checkout per request; the row lock above serializes this check.
		open, err := tx.Holds().FindLiveByRequest(ctx, requestID, hold.KindCheckout, now)
		switch {
		case err == nil:
			if open.TimeOption() == opt {
				return errs.ErrSlotTaken
			}
			return errs.ErrCheckoutInProgress
		case !isNotFound(err):
			return storageErr(err)
		}

		held, err = reserveTx(ctx, tx, requestID, opt, checkoutToken, now, r.policy.CheckoutHoldTTL)
		if err != nil {
			return err
		}

		checkout, err := hold.NewCheckout(checkoutToken, requestID, opt, now, r.policy.CheckoutHoldTTL)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Holds().Create(ctx, checkout); err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ObserveHoldIssued(hold.KindCheckout.String())

	session := &CheckoutSession{
		RequestID:       requestID,
		CheckoutToken:   checkoutToken,
		TimeOption:      opt.String(),
		ExpiresAt:       held.ExpiresAt,
		RequiresPayment: !reschedule,
	}
	if reschedule {
		return session, nil
	}

	started := time.Now()
	charge, err := r.payments.CreateCharge(ctx, shared.ChargeRequest{
		AmountCents: req.FeeCents(),
		Currency:    r.policy.Currency,
		Description: fmt.Sprintf("%s (%s)", req.ServiceName(), opt),
		SuccessURL:  r.policy.SuccessURL,
		CancelURL:   r.policy.CancelURL,
		Metadata: map[string]string{
			MetaRequestID:     strconv.FormatInt(requestID, 10),
			MetaCheckoutToken: checkoutToken,
		},
	})
	metrics.ObservePaymentCall("create_charge", started, err)
	if err != nil {
		r.logger.Warn("charge creation failed, releasing slot",
			"request_id", requestID, "time_option", opt.String(), "error", err)
		if relErr := r.releaseCheckout(ctx, checkoutToken); relErr != nil {
			r.logger.Error("failed to release slot after charge failure",
				"request_id", requestID, "error", relErr)
		}
		return nil, errs.Mark(err, errs.ErrPaymentCapability)
	}

	session.CheckoutURL = charge.CheckoutURL
	return session, nil
}

// Abandon is idempotent; an unknown token is treated as already released.
func (r *reservationCommandsImpl) Abandon(ctx context.Context, checkoutToken string) error {
	return r.releaseCheckout(ctx, checkoutToken)
}

func (r *reservationCommandsImpl) releaseCheckout(ctx context.Context, checkoutToken string) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Holds().FindByToken(ctx, checkoutToken)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return storageErr(err)
		}
		if h.Kind() != hold.KindCheckout {
			return errs.ErrHoldInvalid
		}
		if _, err := tx.Slots().ReleaseHeldBy(ctx, h.RequestID(), h.TimeOption(), checkoutToken); err != nil {
			return storageErr(err)
		}
		if err := tx.Holds().Delete(ctx, checkoutToken); err != nil {
			return storageErr(err)
		}
		return nil
	})
}
