package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salon-broker/internal/domain/hold"
	"salon-broker/internal/domain/servicerequest"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/shared"
)

// CancelRequest withdraws a request the client has not paid for. A checkout
// that is still open must be abandoned first since the processor may yet
// capture it. Cancelling twice is a no-op.
func (r *reservationCommandsImpl) CancelRequest(ctx context.Context, requestID int64, clientToken string) error {
	var (
		req      *servicerequest.ServiceRequest
		released int
		changed  bool
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()

		var err error
		req, err = clientRequestTx(ctx, tx, requestID, clientToken)
		if err != nil {
			return err
		}
		if req.Status() == servicerequest.StatusCancelled {
			return nil
		}
		if err := ensureUnbookedTx(ctx, tx, req, now); err != nil {
			return err
		}

		// any hold left on a slot has lapsed; free it now rather than at the next sweep
		slots, err := tx.Slots().ListByRequest(ctx, requestID)
		if err != nil {
			return storageErr(err)
		}
		for _, s := range slots {
			if s.ReservedBy() == nil || s.IsConsumed() {
				continue
			}
			n, err := tx.Slots().ReleaseHeldBy(ctx, requestID, s.TimeOption(), *s.ReservedBy())
			if err != nil {
				return storageErr(err)
			}
			released += int(n)
		}

		if err := tx.ServiceRequests().UpdateStatus(ctx, requestID, servicerequest.StatusCancelled, now); err != nil {
			return storageErr(err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	r.logger.Info("service request cancelled by client", "request_id", requestID, "slots_released", released)

	r.notifySalon(ctx, req, notification{
		dedupeKey: fmt.Sprintf("cancel:%d", requestID),
		kind:      shared.NotifyRequestCancelled,
		data:      map[string]any{},
	})
	return nil
}

// RequestReschedule records that the client wants other times than those
// offered. The salon answers with a fresh set of options.
func (r *reservationCommandsImpl) RequestReschedule(ctx context.Context, requestID int64, clientToken, preferredDates string) error {
	preferredDates = strings.TrimSpace(preferredDates)
	if preferredDates == "" {
		return errs.Mark(errs.New("preferred dates are required"), errs.ErrDomainValidation)
	}

	var req *servicerequest.ServiceRequest
	now := r.clock.Now()
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		req, err = clientRequestTx(ctx, tx, requestID, clientToken)
		if err != nil {
			return err
		}
		if err := ensureUnbookedTx(ctx, tx, req, now); err != nil {
			return err
		}
		if err := tx.ServiceRequests().UpdatePreferredDates(ctx, requestID, preferredDates, now); err != nil {
			return storageErr(err)
		}
		if err := tx.ServiceRequests().UpdateStatus(ctx, requestID, servicerequest.StatusRescheduleRequested, now); err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.notifySalon(ctx, req, notification{
		dedupeKey: fmt.Sprintf("reschedule-request:%d:%d", requestID, now.UnixNano()),
		kind:      shared.NotifyRescheduleRequested,
		data: map[string]any{
			"preferredDates": preferredDates,
			"respondWithin":  r.policy.SalonResponseWindow.String(),
		},
	})
	return nil
}

func (r *reservationCommandsImpl) notifySalon(ctx context.Context, req *servicerequest.ServiceRequest, n notification) {
	var salon *shared.PartySnapshot
	err := r.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		salon, err = tx.Parties().SalonByID(ctx, req.SalonID())
		return err
	})
	if err != nil {
		r.logger.Warn("salon not notified", "request_id", req.ID(), "kind", n.kind, "error", err)
		return
	}

	n.requestID = req.ID()
	n.recipient = salon.Email
	n.data["requestId"] = req.ID()
	n.data["clientName"] = req.Client().Name()
	n.data["serviceName"] = req.ServiceName()
	r.notify.send(ctx, n)
}

// clientRequestTx authenticates a client by any hold token issued for the
// request, expired or not, and locks the request row.
func clientRequestTx(ctx context.Context, tx shared.Tx, requestID int64, clientToken string) (*servicerequest.ServiceRequest, error) {
	h, err := tx.Holds().FindByToken(ctx, clientToken)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.Mark(err, errs.ErrHoldInvalid)
		}
		return nil, storageErr(err)
	}
	if h.RequestID() != requestID {
		return nil, errs.Mark(hold.ErrWrongRequest, errs.ErrHoldInvalid)
	}

	req, err := tx.ServiceRequests().FindByIDForUpdate(ctx, requestID)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.Mark(err, errs.ErrServiceRequestNotFound)
		}
		return nil, storageErr(err)
	}
	return req, nil
}

// ensureUnbookedTx rejects requests that are closed, already paid for or
// mid-checkout.
func ensureUnbookedTx(ctx context.Context, tx shared.Tx, req *servicerequest.ServiceRequest, now time.Time) error {
	if err := req.EnsureAcceptsTimeOptions(); err != nil {
		return errs.Mark(err, errs.ErrRequestClosed)
	}
	if _, err := tx.Bookings().FindActiveByRequest(ctx, req.ID()); err == nil {
		return errs.ErrRequestClosed
	} else if !isNotFound(err) {
		return storageErr(err)
	}
	if _, err := tx.Holds().FindLiveByRequest(ctx, req.ID(), hold.KindCheckout, now); err == nil {
		return errs.ErrCheckoutInProgress
	} else if !isNotFound(err) {
		return storageErr(err)
	}
	return nil
}
