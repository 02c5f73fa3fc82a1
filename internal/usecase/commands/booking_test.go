//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-broker/internal/domain/booking"
	"salon-broker/internal/domain/servicerequest"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/shared"
	"salon-broker/tests/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func settledBooking(t *testing.T) (*fixture, uuid.UUID) {
	t.Helper()
	f := newFixture(t)
	session := f.checkout(t, "Tue 3pm", "Tue 3pm", "Wed 10am")
	res := f.settle(t, session, "pi_booking")
	return f, res.BookingID
}

func TestConfirm(t *testing.T) {
	t.Run("success: pending booking confirmed and client told", func(t *testing.T) {
		f, id := settledBooking(t)

		require.NoError(t, f.bookings.Confirm(context.Background(), f.salon, id))

		assert.Equal(t, booking.StatusConfirmed, f.store.Booking(id).Status())
		found := false
		for _, n := range f.store.Notifications() {
			if n.Kind == shared.NotifyAppointmentConfirmed {
				found = true
				assert.Equal(t, "dana@example.com", n.Recipient)
			}
		}
		assert.True(t, found)
	})

	t.Run("error: confirming twice", func(t *testing.T) {
		f, id := settledBooking(t)
		require.NoError(t, f.bookings.Confirm(context.Background(), f.salon, id))

		err := f.bookings.Confirm(context.Background(), f.salon, id)

		helper.AssertErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("error: another salon", func(t *testing.T) {
		f, id := settledBooking(t)
		err := f.bookings.Confirm(context.Background(), otherSalon(), id)
		helper.AssertErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, booking.StatusPendingConfirmation, f.store.Booking(id).Status())
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		f := newFixture(t)
		err := f.bookings.Confirm(context.Background(), f.salon, uuid.New())
		helper.AssertErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

// The salon cannot make the booked time and offers others; the client picks
// one without paying again and the salon confirms the new time.
func TestRescheduleFlow(t *testing.T) {
	f, id := settledBooking(t)
	ctx := context.Background()

	dh, err := f.bookings.OfferAlternatives(ctx, f.salon, id, []string{"Thu 1pm", "Fri 4pm"})
	require.NoError(t, err)
	assert.Equal(t, booking.StatusRescheduleOffered, f.store.Booking(id).Status())
	assert.Equal(t, servicerequest.StatusRescheduleRequested, f.store.Request(42).Status())
	assert.Nil(t, f.store.Slot(42, "Tue 3pm"))

	// no CreateCharge expectation: a charge here fails the test
	session, err := f.reservations.SelectTime(ctx, 42, dh.HourToken, "Fri 4pm")
	require.NoError(t, err)
	assert.False(t, session.RequiresPayment)
	assert.Empty(t, session.CheckoutURL)

	accepted, err := f.bookings.AcceptAlternative(ctx, session.CheckoutToken)
	require.NoError(t, err)
	assert.Equal(t, id, accepted.BookingID)
	assert.Equal(t, "Fri 4pm", accepted.AppointmentTime)
	assert.Equal(t, booking.StatusPendingConfirmation, accepted.Status)

	b := f.store.Booking(id)
	assert.Equal(t, "Fri 4pm", b.AppointmentTime().String())
	assert.Equal(t, "pi_booking", b.TransactionRef())
	assert.Equal(t, servicerequest.StatusConfirmed, f.store.Request(42).Status())
	assert.True(t, f.store.Slot(42, "Fri 4pm").IsConsumed())
	assert.True(t, f.store.Slot(42, "Thu 1pm").ClaimableAt(f.clock.Now()))
	assert.Nil(t, f.store.Hold(session.CheckoutToken))
	assert.Equal(t, int64(2250), f.store.ReferrerTotal(f.referrer.ID))

	require.NoError(t, f.bookings.Confirm(ctx, f.salon, id))
	assert.Equal(t, booking.StatusConfirmed, f.store.Booking(id).Status())
}

func TestAcceptAlternative_Errors(t *testing.T) {
	t.Run("checkout hold lapsed", func(t *testing.T) {
		f, id := settledBooking(t)
		dh, err := f.bookings.OfferAlternatives(context.Background(), f.salon, id, []string{"Thu 1pm"})
		require.NoError(t, err)
		session, err := f.reservations.SelectTime(context.Background(), 42, dh.HourToken, "Thu 1pm")
		require.NoError(t, err)
		f.clock.Add(10 * time.Minute)

		_, err = f.bookings.AcceptAlternative(context.Background(), session.CheckoutToken)

		helper.AssertErrorIs(t, err, errs.ErrHoldExpired)
		assert.Equal(t, booking.StatusRescheduleOffered, f.store.Booking(id).Status())
	})

	t.Run("unknown token", func(t *testing.T) {
		f, _ := settledBooking(t)
		_, err := f.bookings.AcceptAlternative(context.Background(), "chk_missing")
		helper.AssertErrorIs(t, err, errs.ErrHoldInvalid)
	})

	t.Run("booking not awaiting a reschedule", func(t *testing.T) {
		f := newFixture(t)
		session := f.checkout(t, "Tue 3pm", "Tue 3pm")
		_, err := f.bookings.AcceptAlternative(context.Background(), session.CheckoutToken)
		helper.AssertErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestSelectTime_ClosedWhileBooked(t *testing.T) {
	f, _ := settledBooking(t)
	dh, err := f.reservations.HoldForDecision(context.Background(), 42, []string{"Wed 10am"})
	require.NoError(t, err)
	f.payments.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Times(0)

	_, err = f.reservations.SelectTime(context.Background(), 42, dh.HourToken, "Wed 10am")

	helper.AssertErrorIs(t, err, errs.ErrRequestClosed)
}
