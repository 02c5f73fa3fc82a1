//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-broker/internal/domain/hold"
	"salon-broker/internal/domain/slot"
	"salon-broker/internal/infra"
	"salon-broker/internal/infra/repository"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"
	repositorymock "salon-broker/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func TestSlotRepository_ReplaceForRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("success: clears then inserts options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotQueries(ctrl)
		mockDB := &mockDBTX{}
		gomock.InOrder(
			mockQueries.EXPECT().DeleteSlotsByRequest(ctx, mockDB, int64(42)).Return(nil),
			mockQueries.EXPECT().InsertSlots(ctx, mockDB, sqlc.InsertSlotsParams{
				RequestID:   42,
				TimeOptions: []string{"Tue 3pm", "Wed 10am"},
			}).Return(nil),
		)

		err := repository.NewSlotRepository(mockQueries, mockDB).
			ReplaceForRequest(ctx, 42, []slot.TimeOption{"Tue 3pm", "Wed 10am"})

		assert.NoError(t, err)
	})

	t.Run("success: empty list only clears", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().DeleteSlotsByRequest(ctx, mockDB, int64(42)).Return(nil)

		assert.NoError(t, repository.NewSlotRepository(mockQueries, mockDB).ReplaceForRequest(ctx, 42, nil))
	})

	t.Run("error: delete fails, nothing inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().DeleteSlotsByRequest(ctx, mockDB, int64(42)).Return(errors.New("deadlock"))

		err := repository.NewSlotRepository(mockQueries, mockDB).ReplaceForRequest(ctx, 42, []slot.TimeOption{"Tue 3pm"})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSlotRepository_Find(t *testing.T) {
	ctx := context.Background()
	holder := "chk_abc"
	expires := t0.Add(10 * time.Minute)

	testCases := []struct {
		name       string
		row        sqlc.SlotReservations
		queryErr   error
		expectKind infra.RepositoryErrorKind
		check      func(t *testing.T, r *slot.Reservation)
	}{
		{
			name: "success: held slot",
			row: sqlc.SlotReservations{
				RequestID:   42,
				TimeOption:  "Tue 3pm",
				IsAvailable: false,
				ReservedBy:  pgconv.StringToPgtype(holder),
				ReservedAt:  pgconv.TimeToPgtype(t0),
				ExpiresAt:   pgconv.TimeToPgtype(expires),
			},
			check: func(t *testing.T, r *slot.Reservation) {
				assert.True(t, r.HeldBy(holder, t0))
				assert.Equal(t, slot.Availability{Reason: slot.ReasonHeld}, r.AvailabilityAt(t0))
				assert.True(t, r.ClaimableAt(expires))
			},
		},
		{
			name: "success: open slot has no holder",
			row:  sqlc.SlotReservations{RequestID: 42, TimeOption: "Tue 3pm", IsAvailable: true},
			check: func(t *testing.T, r *slot.Reservation) {
				assert.Nil(t, r.ReservedBy())
				assert.Nil(t, r.ExpiresAt())
				assert.True(t, r.ClaimableAt(t0))
			},
		},
		{
			name:       "error: not offered",
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error occurs",
			queryErr:   errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSlotQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().GetSlot(ctx, mockDB, sqlc.GetSlotParams{RequestID: 42, TimeOption: "Tue 3pm"}).
				Return(tc.row, tc.queryErr)

			got, err := repository.NewSlotRepository(mockQueries, mockDB).Find(ctx, 42, "Tue 3pm")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			tc.check(t, got)
		})
	}
}

func TestSlotRepository_ConditionalUpdates(t *testing.T) {
	ctx := context.Background()

	t.Run("reserve passes the hold window through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ReserveSlot(ctx, mockDB, sqlc.ReserveSlotParams{
			Holder:     "chk_abc",
			Now:        pgconv.TimeToPgtype(t0),
			ExpiresAt:  pgconv.TimeToPgtype(t0.Add(10 * time.Minute)),
			RequestID:  42,
			TimeOption: "Tue 3pm",
		}).Return(int64(0), nil)

		n, err := repository.NewSlotRepository(mockQueries, mockDB).
			Reserve(ctx, 42, "Tue 3pm", "chk_abc", t0, t0.Add(10*time.Minute))

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("consume reports rows affected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ConsumeSlot(ctx, mockDB, sqlc.ConsumeSlotParams{
			RequestID:  42,
			TimeOption: "Tue 3pm",
			Holder:     "chk_abc",
			Now:        pgconv.TimeToPgtype(t0),
		}).Return(int64(1), nil)

		n, err := repository.NewSlotRepository(mockQueries, mockDB).Consume(ctx, 42, "Tue 3pm", "chk_abc", t0)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("release scoped to holder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ReleaseSlotHeldBy(ctx, mockDB, sqlc.ReleaseSlotHeldByParams{
			RequestID:  42,
			TimeOption: "Tue 3pm",
			Holder:     "chk_abc",
		}).Return(int64(0), errors.New("broken pipe"))

		_, err := repository.NewSlotRepository(mockQueries, mockDB).ReleaseHeldBy(ctx, 42, "Tue 3pm", "chk_abc")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().SweepExpiredSlots(ctx, mockDB, pgconv.TimeToPgtype(t0)).Return(int64(3), nil)

		n, err := repository.NewSlotRepository(mockQueries, mockDB).SweepExpired(ctx, t0)

		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("sweep only touches holds that lapsed before now", func(t *testing.T) {
		db := &recordingDBTX{tag: pgconn.NewCommandTag("UPDATE 1")}

		n, err := repository.NewSlotRepository(sqlc.New(), db).SweepExpired(ctx, t0)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.Contains(t, db.sql, "expires_at IS NOT NULL AND expires_at < $1")
		require.Len(t, db.args, 1)
		assert.Equal(t, pgconv.TimeToPgtype(t0), db.args[0])
	})
}

func TestHoldRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create: checkout hold carries its option", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHoldQueries(ctrl)
		mockDB := &mockDBTX{}
		h, err := hold.NewCheckout("chk_abc", 42, "Tue 3pm", t0, 10*time.Minute)
		require.NoError(t, err)
		mockQueries.EXPECT().CreateHold(ctx, mockDB, sqlc.CreateHoldParams{
			Token:      "chk_abc",
			RequestID:  42,
			Kind:       "checkout",
			TimeOption: pgconv.StringToPgtype("Tue 3pm"),
			ExpiresAt:  pgconv.TimeToPgtype(t0.Add(10 * time.Minute)),
			CreatedAt:  pgconv.TimeToPgtype(t0),
		}).Return(nil)

		assert.NoError(t, repository.NewHoldRepository(mockQueries, mockDB).Create(ctx, h))
	})

	t.Run("create: decision hold has null option", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHoldQueries(ctrl)
		mockDB := &mockDBTX{}
		h, err := hold.NewDecision("dec_abc", 42, t0, time.Hour)
		require.NoError(t, err)
		mockQueries.EXPECT().CreateHold(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateHoldParams) error {
				assert.Equal(t, pgtype.Text{}, arg.TimeOption)
				assert.Equal(t, "decision", arg.Kind)
				return nil
			})

		assert.NoError(t, repository.NewHoldRepository(mockQueries, mockDB).Create(ctx, h))
	})

	t.Run("find: converts row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHoldQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetHold(ctx, mockDB, "chk_abc").Return(sqlc.Holds{
			Token:      "chk_abc",
			RequestID:  42,
			Kind:       "checkout",
			TimeOption: pgconv.StringToPgtype("Tue 3pm"),
			ExpiresAt:  pgconv.TimeToPgtype(t0.Add(10 * time.Minute)),
			CreatedAt:  pgconv.TimeToPgtype(t0),
		}, nil)

		h, err := repository.NewHoldRepository(mockQueries, mockDB).FindByToken(ctx, "chk_abc")

		require.NoError(t, err)
		assert.Equal(t, hold.KindCheckout, h.Kind())
		assert.Equal(t, slot.TimeOption("Tue 3pm"), h.TimeOption())
		assert.NoError(t, h.Validate(hold.KindCheckout, 42, t0))
	})

	t.Run("find: unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHoldQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetHold(ctx, mockDB, "dec_missing").Return(sqlc.Holds{}, pgx.ErrNoRows)

		_, err := repository.NewHoldRepository(mockQueries, mockDB).FindByToken(ctx, "dec_missing")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("find live: newest unexpired hold of kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHoldQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetLiveHoldByRequest(ctx, mockDB, sqlc.GetLiveHoldByRequestParams{
			RequestID: 42,
			Kind:      "checkout",
			ExpiresAt: pgconv.TimeToPgtype(t0),
		}).Return(sqlc.Holds{
			Token:      "chk_abc",
			RequestID:  42,
			Kind:       "checkout",
			TimeOption: pgconv.StringToPgtype("Wed 10am"),
			ExpiresAt:  pgconv.TimeToPgtype(t0.Add(5 * time.Minute)),
			CreatedAt:  pgconv.TimeToPgtype(t0.Add(-5 * time.Minute)),
		}, nil)

		h, err := repository.NewHoldRepository(mockQueries, mockDB).FindLiveByRequest(ctx, 42, hold.KindCheckout, t0)

		require.NoError(t, err)
		assert.Equal(t, "chk_abc", h.Token())
		assert.Equal(t, slot.TimeOption("Wed 10am"), h.TimeOption())
	})

	t.Run("find live: none open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHoldQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetLiveHoldByRequest(ctx, mockDB, gomock.Any()).Return(sqlc.Holds{}, pgx.ErrNoRows)

		_, err := repository.NewHoldRepository(mockQueries, mockDB).FindLiveByRequest(ctx, 42, hold.KindCheckout, t0)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("purge returns count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHoldQueries(ctrl)
		mockDB := &mockDBTX{}
		cutoff := t0.Add(-24 * time.Hour)
		mockQueries.EXPECT().DeleteHoldsExpiredBefore(ctx, mockDB, pgconv.TimeToPgtype(cutoff)).Return(int64(2), nil)

		n, err := repository.NewHoldRepository(mockQueries, mockDB).DeleteExpiredBefore(ctx, cutoff)

		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("delete by request and kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHoldQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().DeleteHoldsByRequest(ctx, mockDB, sqlc.DeleteHoldsByRequestParams{RequestID: 42, Kind: "decision"}).Return(nil)

		assert.NoError(t, repository.NewHoldRepository(mockQueries, mockDB).DeleteByRequest(ctx, 42, hold.KindDecision))
	})
}
