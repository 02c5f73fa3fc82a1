//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-broker/internal/infra"
	"salon-broker/internal/infra/repository"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"
	"salon-broker/internal/usecase/shared"
	repositorymock "salon-broker/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Earnings Tests
// =============================================================================

func TestEarningsRepository_Credit(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	referrerID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockEarningsQueries, *mockDBTX)
		expected      bool
		expectedError bool
	}{
		{
			name: "success: first credit moves the total",
			setupMock: func(mock *repositorymock.MockEarningsQueries, db *mockDBTX) {
				gomock.InOrder(
					mock.EXPECT().InsertEarningsCredit(ctx, db, sqlc.InsertEarningsCreditParams{
						BookingID:   bookingID,
						ReferrerID:  referrerID,
						AmountCents: 2250,
						CreatedAt:   pgconv.TimeToPgtype(t0),
					}).Return(int64(1), nil),
					mock.EXPECT().AddReferrerEarnings(ctx, db, sqlc.AddReferrerEarningsParams{AmountCents: 2250, ID: referrerID}).Return(nil),
				)
			},
			expected: true,
		},
		{
			name: "success: repeat credit leaves the total alone",
			setupMock: func(mock *repositorymock.MockEarningsQueries, db *mockDBTX) {
				mock.EXPECT().InsertEarningsCredit(ctx, db, gomock.Any()).Return(int64(0), nil)
				mock.EXPECT().AddReferrerEarnings(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expected: false,
		},
		{
			name: "error: total update fails",
			setupMock: func(mock *repositorymock.MockEarningsQueries, db *mockDBTX) {
				mock.EXPECT().InsertEarningsCredit(ctx, db, gomock.Any()).Return(int64(1), nil)
				mock.EXPECT().AddReferrerEarnings(ctx, db, gomock.Any()).Return(errors.New("connection reset"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockEarningsQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB)

			credited, err := repository.NewEarningsRepository(mockQueries, mockDB).Credit(ctx, bookingID, referrerID, 2250, t0)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, credited)
		})
	}
}

// =============================================================================
// Settlement Cursor Tests
// =============================================================================

func TestSettlementRepository(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("begin reports whether the cursor is new", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSettlementQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().InsertSettlementEvent(ctx, mockDB, sqlc.InsertSettlementEventParams{
			TransactionRef: "pi_1",
			RequestID:      42,
			BookingID:      bookingID,
			Step:           "booking_recorded",
			UpdatedAt:      pgconv.TimeToPgtype(t0),
		}).Return(int64(0), nil)

		fresh, err := repository.NewSettlementRepository(mockQueries, mockDB).Begin(ctx, shared.SettlementCursor{
			TransactionRef: "pi_1",
			RequestID:      42,
			BookingID:      bookingID,
			Step:           shared.StepBookingRecorded,
			UpdatedAt:      t0,
		})

		require.NoError(t, err)
		assert.False(t, fresh)
	})

	t.Run("find converts completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSettlementQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetSettlementEvent(ctx, mockDB, "pi_1").Return(sqlc.SettlementEvents{
			TransactionRef: "pi_1",
			RequestID:      42,
			BookingID:      bookingID,
			Step:           "notified",
			CompletedAt:    pgconv.TimeToPgtype(t0),
			UpdatedAt:      pgconv.TimeToPgtype(t0),
		}, nil)

		c, err := repository.NewSettlementRepository(mockQueries, mockDB).Find(ctx, "pi_1")

		require.NoError(t, err)
		assert.True(t, c.Completed())
		assert.Equal(t, shared.StepNotified, c.Step)
		assert.Equal(t, bookingID, c.BookingID)
	})

	t.Run("find unknown ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSettlementQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetSettlementEvent(ctx, mockDB, "pi_x").Return(sqlc.SettlementEvents{}, pgx.ErrNoRows)

		_, err := repository.NewSettlementRepository(mockQueries, mockDB).Find(ctx, "pi_x")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	advanceCases := []struct {
		name          string
		step          shared.SettlementStep
		wantCompleted bool
	}{
		{name: "advance mid-way leaves completion unset", step: shared.StepEarningsCredited},
		{name: "advance to the last step stamps completion", step: shared.StepNotified, wantCompleted: true},
	}
	for _, tc := range advanceCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSettlementQueries(ctrl)
			mockDB := &mockDBTX{}
			later := t0.Add(time.Second)
			want := pgtype.Timestamptz{}
			if tc.wantCompleted {
				want = pgconv.TimeToPgtype(later)
			}
			mockQueries.EXPECT().AdvanceSettlementEvent(ctx, mockDB, sqlc.AdvanceSettlementEventParams{
				Step:           string(tc.step),
				UpdatedAt:      pgconv.TimeToPgtype(later),
				CompletedAt:    want,
				TransactionRef: "pi_1",
			}).Return(int64(1), nil)

			err := repository.NewSettlementRepository(mockQueries, mockDB).Advance(ctx, "pi_1", tc.step, later)

			assert.NoError(t, err)
		})
	}

	t.Run("advance without a cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSettlementQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().AdvanceSettlementEvent(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repository.NewSettlementRepository(mockQueries, mockDB).Advance(ctx, "pi_1", shared.StepNotified, t0)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Notification Log Tests
// =============================================================================

func TestNotificationLogRepository(t *testing.T) {
	ctx := context.Background()
	entry := shared.NotificationLogEntry{
		DedupeKey: "awaiting_salon_confirmation:pi_1:dana@example.com",
		RequestID: 42,
		Recipient: "dana@example.com",
		Kind:      shared.NotifyAwaitingConfirmation,
		CreatedAt: t0,
	}

	claimCases := []struct {
		name     string
		rows     int64
		queryErr error
		want     bool
	}{
		{name: "claim: first attempt wins", rows: 1, want: true},
		{name: "claim: key already taken", rows: 0, want: false},
		{name: "claim: database error", queryErr: errors.New("timeout")},
	}
	for _, tc := range claimCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockNotificationLogQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().ClaimNotification(ctx, mockDB, sqlc.ClaimNotificationParams{
				DedupeKey: entry.DedupeKey,
				RequestID: 42,
				Recipient: "dana@example.com",
				Kind:      string(shared.NotifyAwaitingConfirmation),
				CreatedAt: pgconv.TimeToPgtype(t0),
			}).Return(tc.rows, tc.queryErr)

			claimed, err := repository.NewNotificationLogRepository(mockQueries, mockDB).Claim(ctx, entry)

			if tc.queryErr != nil {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, claimed)
		})
	}

	t.Run("mark delivered stores message ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationLogQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().MarkNotificationDelivered(ctx, mockDB, sqlc.MarkNotificationDeliveredParams{
			DedupeKey:   entry.DedupeKey,
			MessageRef:  pgconv.StringToPgtype("msg-1"),
			DeliveredAt: pgconv.TimeToPgtype(t0),
		}).Return(int64(1), nil)

		assert.NoError(t, repository.NewNotificationLogRepository(mockQueries, mockDB).MarkDelivered(ctx, entry.DedupeKey, "msg-1", t0))
	})
}

// =============================================================================
// Party Tests
// =============================================================================

func TestPartyRepository(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()

	t.Run("salon snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPartyQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetSalon(ctx, mockDB, salonID).
			Return(sqlc.Salons{ID: salonID, Name: "Glow Studio", Email: "salon@example.com"}, nil)

		got, err := repository.NewPartyRepository(mockQueries, mockDB).SalonByID(ctx, salonID)

		require.NoError(t, err)
		assert.Equal(t, &shared.PartySnapshot{ID: salonID, Name: "Glow Studio", Email: "salon@example.com"}, got)
	})

	t.Run("unknown referral code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPartyQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetReferralOffer(ctx, mockDB, "NOPE").Return(sqlc.ReferralOffers{}, pgx.ErrNoRows)

		_, err := repository.NewPartyRepository(mockQueries, mockDB).FindByCode(ctx, "NOPE")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("offer converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPartyQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetReferralOffer(ctx, mockDB, "GLOW-2026").Return(sqlc.ReferralOffers{
			Code:        "GLOW-2026",
			SalonID:     salonID,
			ReferrerID:  salonID,
			ServiceName: "Balayage",
			FeeCents:    15000,
		}, nil)

		got, err := repository.NewPartyRepository(mockQueries, mockDB).FindByCode(ctx, "GLOW-2026")

		require.NoError(t, err)
		assert.Equal(t, int64(15000), got.FeeCents)
		assert.Equal(t, "Balayage", got.ServiceName)
	})
}
