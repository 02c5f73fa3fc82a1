package commands

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"salon-broker/internal/domain/servicerequest"
	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/shared"
)

type CreateServiceRequestInput struct {
	ReferralCode   string
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	PreferredDates string
}

type IntakeCommands interface {
	CreateServiceRequest(ctx context.Context, in CreateServiceRequestInput) (int64, error)
}

type intakeCommandsImpl struct {
	uow    shared.UnitOfWork
	notify *dispatcher
	clock  clock.Clock
	policy Policy
	logger *slog.Logger
}

func NewIntakeCommands(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock, policy Policy, logger *slog.Logger) IntakeCommands {
	return &intakeCommandsImpl{
		uow:    uow,
		notify: newDispatcher(notifier, uow, clk, logger),
		clock:  clk,
		policy: policy,
		logger: logger,
	}
}

// CreateServiceRequest opens a request from a referral link and lets the
// client and salon know it is waiting.
func (i *intakeCommandsImpl) CreateServiceRequest(ctx context.Context, in CreateServiceRequestInput) (int64, error) {
	client, err := servicerequest.NewClientContact(in.ClientName, in.ClientEmail, in.ClientPhone)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	var (
		id    int64
		req   *servicerequest.ServiceRequest
		salon *shared.PartySnapshot
	)
	err = i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		offer, err := tx.Offers().FindByCode(ctx, strings.TrimSpace(in.ReferralCode))
		if err != nil {
			if isNotFound(err) {
				return errs.Mark(err, errs.ErrReferralCodeNotFound)
			}
			return storageErr(err)
		}
		req, err = servicerequest.New(*offer, client, in.PreferredDates, i.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		id, err = tx.ServiceRequests().Create(ctx, req)
		if err != nil {
			return storageErr(err)
		}
		salon, err = tx.Parties().SalonByID(ctx, offer.SalonID)
		if err != nil && !isNotFound(err) {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	key := strconv.FormatInt(id, 10)
	i.notify.send(ctx, notification{
		dedupeKey: "intake:" + key + ":client",
		requestID: id,
		recipient: client.Email(),
		kind:      shared.NotifyWaitlistConfirmation,
		data: map[string]any{
			"requestId":   id,
			"clientName":  client.Name(),
			"serviceName": req.ServiceName(),
		},
	})
	if salon != nil {
		i.notify.send(ctx, notification{
			dedupeKey: "intake:" + key + ":salon",
			requestID: id,
			recipient: salon.Email,
			kind:      shared.NotifyNewRequest,
			data: map[string]any{
				"requestId":      id,
				"clientName":     client.Name(),
				"serviceName":    req.ServiceName(),
				"preferredDates": req.PreferredDates(),
				"respondWithin":  i.policy.SalonResponseWindow.String(),
			},
		})
	}
	return id, nil
}

// IsClientError reports whether err came from caller input rather than the system.
func IsClientError(err error) bool {
	for _, target := range []error{
		errs.ErrDomainValidation,
		errs.ErrReferralCodeNotFound,
		errs.ErrServiceRequestNotFound,
		errs.ErrRequestClosed,
		errs.ErrSlotTaken,
		errs.ErrTimeOptionNotOffered,
		errs.ErrHoldExpired,
		errs.ErrHoldInvalid,
		errs.ErrBookingNotFound,
		errs.ErrInvalidTransition,
		errs.ErrRefundReasonRequired,
		errs.ErrInvalidPaymentEvent,
		errs.ErrForbidden,
	} {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}
