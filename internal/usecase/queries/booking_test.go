//go:build unit

package queries_test

import (
	"context"
	"testing"

	"salon-broker/internal/infra"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/queries"
	"salon-broker/internal/usecase/shared"
	"salon-broker/tests/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingQueries_Visibility(t *testing.T) {
	view := &queries.BookingView{
		ID:         uuid.MustParse("b0000000-0000-4000-8000-000000000001"),
		RequestID:  42,
		SalonID:    uuid.MustParse("5a10c0de-0000-4000-8000-000000000001"),
		ReferrerID: uuid.MustParse("4ef00000-0000-4000-8000-000000000002"),
		Status:     "pending_confirmation",
	}

	testCases := []struct {
		name      string
		principal shared.Principal
		wantErr   error
	}{
		{name: "owning salon", principal: shared.Principal{Kind: shared.PrincipalSalon, AccountID: view.SalonID}},
		{name: "earning referrer", principal: shared.Principal{Kind: shared.PrincipalReferrer, AccountID: view.ReferrerID}},
		{name: "client of the request", principal: shared.Principal{Kind: shared.PrincipalClient, RequestID: 42, HoldToken: "chk_x"}},
		{name: "another salon", principal: shared.Principal{Kind: shared.PrincipalSalon, AccountID: uuid.New()}, wantErr: errs.ErrForbidden},
		{name: "salon id presented as referrer", principal: shared.Principal{Kind: shared.PrincipalReferrer, AccountID: view.SalonID}, wantErr: errs.ErrForbidden},
		{name: "client of another request", principal: shared.Principal{Kind: shared.PrincipalClient, RequestID: 43}, wantErr: errs.ErrForbidden},
		{name: "anonymous", principal: shared.Principal{}, wantErr: errs.ErrForbidden},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockBookingReadStore)
			store.On("FindByID", mock.Anything, view.ID).Return(view, nil)
			store.On("FindActiveByRequest", mock.Anything, int64(42)).Return(view, nil)
			q := queries.NewBookingQueries(store)

			byID, errByID := q.GetByID(context.Background(), tc.principal, view.ID)
			byReq, errByReq := q.GetForRequest(context.Background(), tc.principal, 42)

			if tc.wantErr != nil {
				helper.AssertErrorIs(t, errByID, tc.wantErr)
				helper.AssertErrorIs(t, errByReq, tc.wantErr)
				return
			}
			require.NoError(t, errByID)
			require.NoError(t, errByReq)
			assert.Equal(t, view, byID)
			assert.Equal(t, view, byReq)
		})
	}
}

func TestBookingQueries_Errors(t *testing.T) {
	salon := shared.Principal{Kind: shared.PrincipalSalon, AccountID: uuid.New()}

	t.Run("not found", func(t *testing.T) {
		store := new(MockBookingReadStore)
		store.On("FindActiveByRequest", mock.Anything, int64(42)).Return(nil, infra.NotFound("booking not found"))

		_, err := queries.NewBookingQueries(store).GetForRequest(context.Background(), salon, 42)

		helper.AssertErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		store := new(MockBookingReadStore)
		store.On("FindByID", mock.Anything, mock.Anything).
			Return(nil, infra.WrapRepoErr("failed to find booking", assert.AnError))

		_, err := queries.NewBookingQueries(store).GetByID(context.Background(), salon, uuid.New())

		helper.AssertErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
