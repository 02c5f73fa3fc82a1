package commands

import (
	"context"
	"log/slog"
	"time"

	"salon-broker/internal/domain/slot"
	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/pkg/metrics"
	"salon-broker/internal/usecase/shared"
)

// SlotLedger is the single authority on which time options are free.
type SlotLedger interface {
	OfferSlots(ctx context.Context, requestID int64, options []string) error
	CheckAvailability(ctx context.Context, requestID int64, option string) (slot.Availability, error)
	Reserve(ctx context.Context, requestID int64, option, holder string, ttl time.Duration) (*SlotHold, error)
	Release(ctx context.Context, requestID int64, option string) error
	SweepExpired(ctx context.Context) (*SweepReport, error)
}

type SlotHold struct {
	RequestID  int64
	TimeOption slot.TimeOption
	ReservedBy string
	ExpiresAt  time.Time
}

type SweepReport struct {
	SlotsReleased int64
	HoldsPurged   int64
}

type slotLedgerImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy Policy
	logger *slog.Logger
}

func NewSlotLedger(uow shared.UnitOfWork, clk clock.Clock, policy Policy, logger *slog.Logger) SlotLedger {
	return &slotLedgerImpl{
		uow:    uow,
		clock:  clk,
		policy: policy,
		logger: logger,
	}
}

// OfferSlots replaces the request's slot set with fresh, available rows.
func (l *slotLedgerImpl) OfferSlots(ctx context.Context, requestID int64, options []string) error {
	opts, err := slot.NewTimeOptions(options)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	return l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return offerSlotsTx(ctx, tx, requestID, opts)
	})
}

func offerSlotsTx(ctx context.Context, tx shared.Tx, requestID int64, opts []slot.TimeOption) error {
	if _, err := tx.ServiceRequests().FindByID(ctx, requestID); err != nil {
		if isNotFound(err) {
			return errs.Mark(err, errs.ErrServiceRequestNotFound)
		}
		return storageErr(err)
	}
	if err := tx.Slots().ReplaceForRequest(ctx, requestID, opts); err != nil {
		return storageErr(err)
	}
	return nil
}

func (l *slotLedgerImpl) CheckAvailability(ctx context.Context, requestID int64, option string) (slot.Availability, error) {
	opt, err := slot.NewTimeOption(option)
	if err != nil {
		return slot.Availability{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	var r *slot.Reservation
	err = l.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		r, err = tx.Slots().Find(ctx, requestID, opt)
		return err
	})
	if err != nil {
		if isNotFound(err) {
			return slot.Availability{Reason: slot.ReasonNotOffered}, nil
		}
		return slot.Availability{}, storageErr(err)
	}
	return r.AvailabilityAt(l.clock.Now()), nil
}

func (l *slotLedgerImpl) Reserve(ctx context.Context, requestID int64, option, holder string, ttl time.Duration) (*SlotHold, error) {
	opt, err := slot.NewTimeOption(option)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if holder == "" || ttl <= 0 {
		return nil, errs.Mark(errs.New("holder and positive ttl required"), errs.ErrDomainValidation)
	}

	var held *SlotHold
	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		held, err = reserveTx(ctx, tx, requestID, opt, holder, l.clock.Now(), ttl)
		return err
	})
	if err != nil {
		return nil, err
	}
	return held, nil
}

// reserveTx is the conditional claim. Zero affected rows is a lost race or an
// option that was never offered.
func reserveTx(
	ctx context.Context,
	tx shared.Tx,
	requestID int64,
	opt slot.TimeOption,
	holder string,
	now time.Time,
	ttl time.Duration,
) (*SlotHold, error) {
	expiresAt := now.Add(ttl)
	n, err := tx.Slots().Reserve(ctx, requestID, opt, holder, now, expiresAt)
	if err != nil {
		return nil, storageErr(err)
	}
	if n == 0 {
		if _, err := tx.Slots().Find(ctx, requestID, opt); err != nil {
			if isNotFound(err) {
				return nil, errs.ErrTimeOptionNotOffered
			}
			return nil, storageErr(err)
		}
		metrics.ObserveReservation("conflict")
		return nil, errs.ErrSlotTaken
	}
	metrics.ObserveReservation("reserved")
	return &SlotHold{
		RequestID:  requestID,
		TimeOption: opt,
		ReservedBy: holder,
		ExpiresAt:  expiresAt,
	}, nil
}

// Release is idempotent.
func (l *slotLedgerImpl) Release(ctx context.Context, requestID int64, option string) error {
	opt, err := slot.NewTimeOption(option)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	return l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Slots().Release(ctx, requestID, opt); err != nil {
			return storageErr(err)
		}
		return nil
	})
}

// SweepExpired resets every lapsed hold in a single statement and purges
// hold records past their retention window.
func (l *slotLedgerImpl) SweepExpired(ctx context.Context) (*SweepReport, error) {
	now := l.clock.Now()
	report := &SweepReport{}
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		released, err := tx.Slots().SweepExpired(ctx, now)
		if err != nil {
			return storageErr(err)
		}
		purged, err := tx.Holds().DeleteExpiredBefore(ctx, now.Add(-l.policy.HoldRetention))
		if err != nil {
			return storageErr(err)
		}
		report.SlotsReleased = released
		report.HoldsPurged = purged
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ObserveSweep(report.SlotsReleased)
	if report.SlotsReleased > 0 || report.HoldsPurged > 0 {
		l.logger.Info("swept expired holds",
			"slots_released", report.SlotsReleased,
			"holds_purged", report.HoldsPurged)
	}
	return report, nil
}
