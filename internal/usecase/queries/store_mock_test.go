//go:build unit

package queries_test

import (
	"context"
	"time"

	"salon-broker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockDecisionReadStore struct {
	mock.Mock
}

func (m *MockDecisionReadStore) FindHold(ctx context.Context, token string) (*queries.HoldRow, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.HoldRow), args.Error(1)
}

func (m *MockDecisionReadStore) FindRequestSummary(ctx context.Context, requestID int64) (*queries.RequestSummary, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.RequestSummary), args.Error(1)
}

func (m *MockDecisionReadStore) ListSlots(ctx context.Context, requestID int64) ([]*queries.SlotRow, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]*queries.SlotRow), args.Error(1)
}

type MockBookingReadStore struct {
	mock.Mock
}

func (m *MockBookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.BookingView), args.Error(1)
}

func (m *MockBookingReadStore) FindActiveByRequest(ctx context.Context, requestID int64) (*queries.BookingView, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.BookingView), args.Error(1)
}

type MockEarningsReadStore struct {
	mock.Mock
}

func (m *MockEarningsReadStore) FindReferrer(ctx context.Context, referrerID uuid.UUID) (*queries.ReferrerEarningsView, error) {
	args := m.Called(ctx, referrerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.ReferrerEarningsView), args.Error(1)
}

func (m *MockEarningsReadStore) ListCreditsFirstPage(ctx context.Context, referrerID uuid.UUID, limit int32) ([]*queries.EarningsCredit, error) {
	args := m.Called(ctx, referrerID, limit)
	return args.Get(0).([]*queries.EarningsCredit), args.Error(1)
}

func (m *MockEarningsReadStore) ListCreditsKeyset(
	ctx context.Context,
	referrerID uuid.UUID,
	lastCreatedAt time.Time,
	lastBookingID uuid.UUID,
	limit int32,
) ([]*queries.EarningsCredit, error) {
	args := m.Called(ctx, referrerID, lastCreatedAt, lastBookingID, limit)
	return args.Get(0).([]*queries.EarningsCredit), args.Error(1)
}
