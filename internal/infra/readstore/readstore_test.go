//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-broker/internal/infra"
	"salon-broker/internal/infra/readstore"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"
	readstoremock "salon-broker/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	t0                  = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
)

// =============================================================================
// Decision View Tests
// =============================================================================

func TestDecisionReadStore_FindHold(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockDecisionViewQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		check         func(t *testing.T)
	}{
		{
			name: "success: decision hold without option",
			setupMock: func(mock *readstoremock.MockDecisionViewQueries) {
				mock.EXPECT().GetHold(ctx, gomock.Any(), "dec_abc").Return(sqlc.Holds{
					Token:     "dec_abc",
					RequestID: 42,
					Kind:      "decision",
					ExpiresAt: pgconv.TimeToPgtype(t0.Add(time.Hour)),
					CreatedAt: pgconv.TimeToPgtype(t0),
				}, nil)
			},
		},
		{
			name: "error: hold not found",
			setupMock: func(mock *readstoremock.MockDecisionViewQueries) {
				mock.EXPECT().GetHold(ctx, gomock.Any(), "dec_abc").Return(sqlc.Holds{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockDecisionViewQueries) {
				mock.EXPECT().GetHold(ctx, gomock.Any(), "dec_abc").Return(sqlc.Holds{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockDecisionViewQueries(ctrl)
			store := readstore.NewDecisionReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, actualError := store.FindHold(ctx, "dec_abc")

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result, "result should be nil when error occurs")
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, "decision", result.Kind)
			assert.Nil(t, result.TimeOption)
			assert.Equal(t, t0.Add(time.Hour), result.ExpiresAt)
		})
	}
}

func TestDecisionReadStore_SummaryAndSlots(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()

	t.Run("summary joins salon name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDecisionViewQueries(ctrl)
		mockQueries.EXPECT().GetRequestSummary(ctx, gomock.Any(), int64(42)).Return(sqlc.GetRequestSummaryRow{
			ID:          42,
			SalonID:     salonID,
			SalonName:   "Glow Studio",
			ServiceName: "Balayage",
			FeeCents:    15000,
			ClientName:  "Dana Client",
			Status:      "responded",
			CreatedAt:   pgconv.TimeToPgtype(t0),
		}, nil)

		got, err := readstore.NewDecisionReadStore(mockQueries, &mockDBTX{}).FindRequestSummary(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, "Glow Studio", got.SalonName)
		assert.Equal(t, salonID, got.SalonID)
	})

	t.Run("summary of unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDecisionViewQueries(ctrl)
		mockQueries.EXPECT().GetRequestSummary(ctx, gomock.Any(), int64(9)).Return(sqlc.GetRequestSummaryRow{}, pgx.ErrNoRows)

		_, err := readstore.NewDecisionReadStore(mockQueries, &mockDBTX{}).FindRequestSummary(ctx, 9)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("slots keep nullable hold columns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDecisionViewQueries(ctrl)
		mockQueries.EXPECT().ListSlotsByRequest(ctx, gomock.Any(), int64(42)).Return([]sqlc.SlotReservations{
			{RequestID: 42, TimeOption: "Tue 3pm", IsAvailable: true},
			{
				RequestID:   42,
				TimeOption:  "Wed 10am",
				IsAvailable: false,
				ReservedBy:  pgconv.StringToPgtype("chk_abc"),
				ReservedAt:  pgconv.TimeToPgtype(t0),
				ExpiresAt:   pgconv.TimeToPgtype(t0.Add(10 * time.Minute)),
			},
		}, nil)

		rows, err := readstore.NewDecisionReadStore(mockQueries, &mockDBTX{}).ListSlots(ctx, 42)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Nil(t, rows[0].ReservedBy)
		require.NotNil(t, rows[1].ReservedBy)
		assert.Equal(t, "chk_abc", *rows[1].ReservedBy)
		require.NotNil(t, rows[1].ExpiresAt)
	})
}

// =============================================================================
// Booking View Tests
// =============================================================================

func TestBookingReadStore(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	row := sqlc.Bookings{
		ID:                      id,
		RequestID:               42,
		ServiceName:             "Balayage",
		AppointmentTime:         "Tue 3pm",
		BookingStatus:           "refunded",
		FeeCents:                15000,
		PlatformCommissionCents: 3000,
		ReferrerCommissionCents: 2250,
		SalonNetCents:           12000,
		TransactionRef:          "pi_1",
		RefundReason:            pgtype.Text{String: "stylist unavailable", Valid: true},
		CreatedAt:               pgconv.TimeToPgtype(t0),
		UpdatedAt:               pgconv.TimeToPgtype(t0),
	}

	t.Run("success: by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetBooking(ctx, gomock.Any(), id).Return(row, nil)

		got, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "refunded", got.Status)
		assert.Equal(t, int64(12000), got.SalonNetCents)
		require.NotNil(t, got.RefundReason)
		assert.Equal(t, "stylist unavailable", *got.RefundReason)
	})

	t.Run("error: no active booking for request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetActiveBookingByRequest(ctx, gomock.Any(), int64(42)).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		got, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).FindActiveByRequest(ctx, 42)

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Earnings View Tests
// =============================================================================

func TestEarningsReadStore(t *testing.T) {
	ctx := context.Background()
	referrerID := uuid.New()
	bookingID := uuid.New()

	t.Run("referrer totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockEarningsViewQueries(ctrl)
		mockQueries.EXPECT().GetReferrer(ctx, gomock.Any(), referrerID).
			Return(sqlc.Referrers{ID: referrerID, Name: "Riley Referrer", TotalEarningsCents: 4500}, nil)

		got, err := readstore.NewEarningsReadStore(mockQueries, &mockDBTX{}).FindReferrer(ctx, referrerID)

		require.NoError(t, err)
		assert.Equal(t, int64(4500), got.TotalEarningsCents)
		assert.Empty(t, got.Credits)
	})

	t.Run("first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockEarningsViewQueries(ctrl)
		mockQueries.EXPECT().ListReferrerCreditsFirstPage(ctx, gomock.Any(), sqlc.ListReferrerCreditsFirstPageParams{
			ReferrerID: referrerID,
			Limit:      21,
		}).Return([]sqlc.ListReferrerCreditsFirstPageRow{
			{BookingID: bookingID, ServiceName: "Balayage", AmountCents: 2250, CreatedAt: pgconv.TimeToPgtype(t0)},
		}, nil)

		got, err := readstore.NewEarningsReadStore(mockQueries, &mockDBTX{}).ListCreditsFirstPage(ctx, referrerID, 21)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, bookingID, got[0].BookingID)
		assert.Equal(t, t0, got[0].CreatedAt)
	})

	t.Run("keyset page passes the cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockEarningsViewQueries(ctrl)
		mockQueries.EXPECT().ListReferrerCreditsKeyset(ctx, gomock.Any(), sqlc.ListReferrerCreditsKeysetParams{
			ReferrerID: referrerID,
			CreatedAt:  pgconv.TimeToPgtype(t0),
			BookingID:  bookingID,
			Lim:        21,
		}).Return(nil, errDBConnectionLost)

		_, err := readstore.NewEarningsReadStore(mockQueries, &mockDBTX{}).ListCreditsKeyset(ctx, referrerID, t0, bookingID, 21)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
