package queries

import (
	"context"
	"errors"

	"salon-broker/internal/domain/hold"
	"salon-broker/internal/domain/slot"
	"salon-broker/internal/infra"
	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/pkg/errs"
)

type DecisionReadStore interface {
	FindHold(ctx context.Context, token string) (*HoldRow, error)
	FindRequestSummary(ctx context.Context, requestID int64) (*RequestSummary, error)
	ListSlots(ctx context.Context, requestID int64) ([]*SlotRow, error)
}

type DecisionQueries interface {
	GetDecisionView(ctx context.Context, requestID int64, hourToken string) (*DecisionView, error)
}

type decisionQueriesImpl struct {
	store DecisionReadStore
	clock clock.Clock
}

func NewDecisionQueries(store DecisionReadStore, clk clock.Clock) DecisionQueries {
	return &decisionQueriesImpl{store: store, clock: clk}
}

// GetDecisionView lists the request's time options with availability as of
// now. Holds whose expiry has passed read as available.
func (q *decisionQueriesImpl) GetDecisionView(ctx context.Context, requestID int64, hourToken string) (*DecisionView, error) {
	now := q.clock.Now()

	row, err := q.store.FindHold(ctx, hourToken)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrHoldInvalid)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	h := hold.Reconstruct(row.Token, row.RequestID, hold.Kind(row.Kind), optionOf(row.TimeOption), row.ExpiresAt, row.CreatedAt)
	if err := h.Validate(hold.KindDecision, requestID, now); err != nil {
		if errors.Is(err, hold.ErrExpired) {
			return nil, errs.Mark(err, errs.ErrHoldExpired)
		}
		return nil, errs.Mark(err, errs.ErrHoldInvalid)
	}

	summary, err := q.store.FindRequestSummary(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceRequestNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slots, err := q.store.ListSlots(ctx, requestID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	options := make([]TimeOptionView, 0, len(slots))
	for _, s := range slots {
		r := slot.Reconstruct(requestID, slot.TimeOption(s.TimeOption), s.IsAvailable, s.ReservedBy, s.ReservedAt, s.ExpiresAt)
		a := r.AvailabilityAt(now)
		options = append(options, TimeOptionView{
			TimeOption: s.TimeOption,
			Available:  a.Available,
			Reason:     a.Reason,
		})
	}

	return &DecisionView{
		Request:   *summary,
		ExpiresAt: h.ExpiresAt(),
		Options:   options,
	}, nil
}

func optionOf(s *string) slot.TimeOption {
	if s == nil {
		return ""
	}
	return slot.TimeOption(*s)
}
