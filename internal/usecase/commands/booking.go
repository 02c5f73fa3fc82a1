package commands

import (
	"context"
	"log/slog"

	"salon-broker/internal/domain/booking"
	"salon-broker/internal/domain/hold"
	"salon-broker/internal/domain/servicerequest"
	"salon-broker/internal/domain/slot"
	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type AcceptedAlternative struct {
	BookingID       uuid.UUID
	RequestID       int64
	AppointmentTime string
	Status          booking.Status
}

// BookingCommands drive the salon side of the booking lifecycle plus the
// client's acceptance of a rescheduled time.
type BookingCommands interface {
	Confirm(ctx context.Context, principal shared.Principal, bookingID uuid.UUID) error
	OfferAlternatives(ctx context.Context, principal shared.Principal, bookingID uuid.UUID, options []string) (*DecisionHold, error)
	AcceptAlternative(ctx context.Context, checkoutToken string) (*AcceptedAlternative, error)
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	holds  *decisionIssuer
	notify *dispatcher
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	clk clock.Clock,
	policy Policy,
	logger *slog.Logger,
) BookingCommands {
	notify := newDispatcher(notifier, uow, clk, logger)
	return &bookingCommandsImpl{
		uow:    uow,
		holds:  newDecisionIssuer(uow, notify, clk, policy),
		notify: notify,
		clock:  clk,
		logger: logger,
	}
}

// loadOwnedBooking fetches the booking and checks the salon principal owns it.
func loadOwnedBooking(ctx context.Context, tx shared.Tx, principal shared.Principal, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByID(ctx, bookingID)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, storageErr(err)
	}
	if !principal.IsSalon(b.SalonID()) {
		return nil, errs.ErrForbidden
	}
	return b, nil
}

// saveTransition writes b back guarded by the status it was loaded in.
func saveTransition(ctx context.Context, tx shared.Tx, b *booking.Booking, from booking.Status) error {
	n, err := tx.Bookings().Update(ctx, b, from)
	if err != nil {
		return storageErr(err)
	}
	if n == 0 {
		return errs.Mark(errs.New("booking changed concurrently"), errs.ErrInvalidTransition)
	}
	return nil
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, principal shared.Principal, bookingID uuid.UUID) error {
	var b *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = loadOwnedBooking(ctx, tx, principal, bookingID)
		if err != nil {
			return err
		}
		from := b.Status()
		if err := b.Confirm(c.clock.Now()); err != nil {
			return transitionErr(err)
		}
		return saveTransition(ctx, tx, b, from)
	})
	if err != nil {
		return err
	}

	c.notify.send(ctx, notification{
		dedupeKey: "confirmed:" + b.ID().String() + ":" + b.AppointmentTime().String(),
		requestID: b.RequestID(),
		recipient: b.ClientEmail(),
		kind:      shared.NotifyAppointmentConfirmed,
		data: map[string]any{
			"bookingId":       b.ID().String(),
			"clientName":      b.ClientName(),
			"serviceName":     b.ServiceName(),
			"appointmentTime": b.AppointmentTime().String(),
		},
	})
	return nil
}

// OfferAlternatives swaps the request's slot set for new options and gives
// the client a fresh decision token. The original payment stands.
func (c *bookingCommandsImpl) OfferAlternatives(
	ctx context.Context,
	principal shared.Principal,
	bookingID uuid.UUID,
	options []string,
) (*DecisionHold, error) {
	opts, err := slot.NewTimeOptions(options)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var b *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = loadOwnedBooking(ctx, tx, principal, bookingID)
		if err != nil {
			return err
		}
		from := b.Status()
		now := c.clock.Now()
		if err := b.OfferAlternatives(now); err != nil {
			return transitionErr(err)
		}
		if err := saveTransition(ctx, tx, b, from); err != nil {
			return err
		}
		if err := tx.Slots().ReplaceForRequest(ctx, b.RequestID(), opts); err != nil {
			return storageErr(err)
		}
		if err := tx.ServiceRequests().UpdateStatus(ctx, b.RequestID(), servicerequest.StatusRescheduleRequested, now); err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.holds.issue(ctx, b.RequestID(), opts, shared.NotifyAlternativesOffered)
}

func (c *bookingCommandsImpl) AcceptAlternative(ctx context.Context, checkoutToken string) (*AcceptedAlternative, error) {
	var (
		b     *booking.Booking
		salon *shared.PartySnapshot
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		h, err := tx.Holds().FindByToken(ctx, checkoutToken)
		if err != nil {
			if isNotFound(err) {
				return errs.Mark(err, errs.ErrHoldInvalid)
			}
			return storageErr(err)
		}
		if err := h.Validate(hold.KindCheckout, 0, now); err != nil {
			return holdErr(err)
		}

		b, err = tx.Bookings().FindActiveByRequest(ctx, h.RequestID())
		if err != nil {
			if isNotFound(err) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return storageErr(err)
		}
		from := b.Status()
		if err := b.AcceptAlternative(h.TimeOption(), now); err != nil {
			return transitionErr(err)
		}

		n, err := tx.Slots().Consume(ctx, h.RequestID(), h.TimeOption(), checkoutToken, now)
		if err != nil {
			return storageErr(err)
		}
		if n == 0 {
			return errs.ErrHoldExpired
		}
		if err := saveTransition(ctx, tx, b, from); err != nil {
			return err
		}
		if err := tx.ServiceRequests().UpdateStatus(ctx, h.RequestID(), servicerequest.StatusConfirmed, now); err != nil {
			return storageErr(err)
		}
		if err := tx.Holds().Delete(ctx, checkoutToken); err != nil {
			return storageErr(err)
		}

		salon, err = tx.Parties().SalonByID(ctx, b.SalonID())
		if err != nil && !isNotFound(err) {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if salon != nil {
		c.notify.send(ctx, notification{
			dedupeKey: "rescheduled:" + checkoutToken,
			requestID: b.RequestID(),
			recipient: salon.Email,
			kind:      shared.NotifySalonConfirmationNeeded,
			data: map[string]any{
				"bookingId":       b.ID().String(),
				"clientName":      b.ClientName(),
				"serviceName":     b.ServiceName(),
				"appointmentTime": b.AppointmentTime().String(),
				"rescheduled":     true,
			},
		})
	}

	return &AcceptedAlternative{
		BookingID:       b.ID(),
		RequestID:       b.RequestID(),
		AppointmentTime: b.AppointmentTime().String(),
		Status:          b.Status(),
	}, nil
}
