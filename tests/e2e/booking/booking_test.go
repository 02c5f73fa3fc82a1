//go:build e2e

package booking_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"strconv"
	"sync"
	"testing"

	resdto "salon-broker/internal/handler/dto/response"
	"salon-broker/internal/infra/payment"
	"salon-broker/internal/usecase/queries"
	"salon-broker/internal/usecase/shared"
	"salon-broker/tests/common/dbtest"
	"salon-broker/tests/common/httptest"
	"salon-broker/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingE2ETestSuite struct {
	e2e.SharedSuite
}

func TestBookingE2ETestSuite(t *testing.T) {
	suite.Run(t, new(BookingE2ETestSuite))
}

// intake opens a request through the referral link and has the salon respond.
func (s *BookingE2ETestSuite) intake(options ...string) (dbtest.ReferralFixture, int64, string) {
	ref := dbtest.SeedReferral(s.T(), s.DB)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/service-requests", map[string]any{
		"referral_code":   ref.Code,
		"client_name":     "Dana",
		"client_email":    "dana@example.com",
		"preferred_dates": "weekday afternoons",
	}, "")
	var created resdto.CreatedResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/salon/requests/"+strconv.FormatInt(created.ID, 10)+"/respond",
		map[string]any{"time_options": options}, s.JWT.SalonToken(s.T(), ref.SalonID))
	var dh resdto.DecisionHoldResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &dh)
	s.Require().NotEmpty(dh.HourToken)

	return ref, created.ID, dh.HourToken
}

func (s *BookingE2ETestSuite) selectTime(requestID int64, hourToken, option string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/requests/"+strconv.FormatInt(requestID, 10)+"/select",
		map[string]any{"hour_token": hourToken, "time_option": option}, "")
}

func (s *BookingE2ETestSuite) deliverPayment(requestID int64, checkoutToken, paymentIntent string) *nethttptest.ResponseRecorder {
	body, err := json.Marshal(map[string]any{
		"id":   "evt_" + paymentIntent,
		"type": payment.EventCheckoutCompleted,
		"data": map[string]any{"object": map[string]any{
			"id":             "cs_" + paymentIntent,
			"payment_intent": paymentIntent,
			"payment_status": "paid",
			"amount_total":   15000,
			"metadata": map[string]string{
				"request_id":     strconv.FormatInt(requestID, 10),
				"checkout_token": checkoutToken,
			},
		}},
	})
	s.Require().NoError(err)

	return httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/api/payments/webhook", body, map[string]string{
		payment.SignatureHeader: hex.EncodeToString(payment.Sign(s.Config.Payment.WebhookSecret, body)),
	})
}

func (s *BookingE2ETestSuite) bookingIDFor(requestID int64) uuid.UUID {
	var id uuid.UUID
	err := s.DB.QueryRow(context.Background(),
		"SELECT id FROM bookings WHERE request_id = $1 AND booking_status <> 'refunded'", requestID).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *BookingE2ETestSuite) TestFullBookingFlow() {
	ref, requestID, hourToken := s.intake("Tue 3pm", "Wed 10am")

	_, ok := s.Notifier.Last(shared.NotifyNewRequest)
	s.True(ok, "salon should be told about the new request")
	offered, ok := s.Notifier.Last(shared.NotifyTimeOptionsOffered)
	s.Require().True(ok)
	s.Equal("dana@example.com", offered.Recipient)

	// decision page
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/requests/"+strconv.FormatInt(requestID, 10)+"/decision?token="+hourToken, nil, "")
	var view queries.DecisionView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
	s.Len(view.Options, 2)
	for _, o := range view.Options {
		s.True(o.Available, o.TimeOption)
	}

	// select and pay
	rec = s.selectTime(requestID, hourToken, "Tue 3pm")
	var session resdto.CheckoutSessionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &session)
	s.True(session.RequiresPayment)
	s.Require().Len(s.Payments.Charges(), 1)
	s.Equal(int64(15000), s.Payments.Charges()[0].AmountCents)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/requests/"+strconv.FormatInt(requestID, 10)+"/slots/Tue%203pm/availability", nil, "")
	var av resdto.AvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &av)
	s.False(av.Available)
	s.Equal("held", av.Reason)

	rec = s.deliverPayment(requestID, session.CheckoutToken, "pi_e2e_1")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Contains(rec.Body.String(), `"settled"`)

	// redelivery is a no-op
	rec = s.deliverPayment(requestID, session.CheckoutToken, "pi_e2e_1")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Contains(rec.Body.String(), `"duplicate"`)

	s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM bookings WHERE request_id = $1", requestID))
	s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM earnings_credits WHERE referrer_id = $1", ref.ReferrerID))
	s.Equal(1, dbtest.CountRows(s.T(), s.DB,
		"SELECT count(*) FROM slot_reservations WHERE request_id = $1 AND time_option = 'Tue 3pm' AND NOT is_available AND expires_at IS NULL", requestID))
	s.Equal(0, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM holds WHERE token = $1", session.CheckoutToken))

	bookingID := s.bookingIDFor(requestID)
	salonToken := s.JWT.SalonToken(s.T(), ref.SalonID)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/salon/bookings/"+bookingID.String(), nil, salonToken)
	var b resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &b)
	expected := &resdto.BookingResponse{
		ID:                      bookingID,
		RequestID:               requestID,
		ClientName:              "Dana",
		ServiceName:             ref.ServiceName,
		AppointmentTime:         "Tue 3pm",
		Status:                  "pending_confirmation",
		FeeCents:                15000,
		PlatformCommissionCents: 3000,
		ReferrerCommissionCents: 2250,
		SalonNetCents:           12000,
	}
	opts := []cmp.Option{
		cmpopts.IgnoreFields(resdto.BookingResponse{}, "CreatedAt", "UpdatedAt"),
	}
	if diff := cmp.Diff(expected, &b, opts...); diff != "" {
		s.T().Errorf("booking mismatch (-want +got):\n%s", diff)
	}

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/salon/bookings/"+bookingID.String()+"/confirm", nil, salonToken)
	s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/referrers/"+ref.ReferrerID.String()+"/earnings", nil, s.JWT.ReferrerToken(s.T(), ref.ReferrerID))
	var earnings queries.ReferrerEarningsView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &earnings)
	s.Equal(int64(2250), earnings.TotalEarningsCents)
	s.Len(earnings.Credits, 1)
}

// Many clients racing for the same slot: one checkout, the rest conflict.
func (s *BookingE2ETestSuite) TestConcurrentSelection() {
	_, requestID, hourToken := s.intake("Tue 3pm")

	const clients = 10
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = map[int]int{}
	)
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := s.selectTime(requestID, hourToken, "Tue 3pm")
			mu.Lock()
			codes[rec.Code]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Equal(1, codes[http.StatusCreated], "codes: %v", codes)
	s.Equal(clients-1, codes[http.StatusConflict], "codes: %v", codes)
	s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM holds WHERE request_id = $1 AND kind = 'checkout'", requestID))
	s.Len(s.Payments.Charges(), 1)
}

func (s *BookingE2ETestSuite) TestSecondCheckoutRejectedWhileFirstIsOpen() {
	_, requestID, hourToken := s.intake("Tue 3pm", "Wed 10am")

	rec := s.selectTime(requestID, hourToken, "Tue 3pm")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.selectTime(requestID, hourToken, "Wed 10am")
	s.Equal(http.StatusConflict, rec.Code, rec.Body.String())
	s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM holds WHERE request_id = $1 AND kind = 'checkout'", requestID))
	s.Equal(1, dbtest.CountRows(s.T(), s.DB,
		"SELECT count(*) FROM slot_reservations WHERE request_id = $1 AND time_option = 'Wed 10am' AND is_available", requestID))
	s.Len(s.Payments.Charges(), 1)
}

func (s *BookingE2ETestSuite) TestClientCancelsAndReschedules() {
	_, requestID, hourToken := s.intake("Tue 3pm")
	base := "/api/requests/" + strconv.FormatInt(requestID, 10)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/reschedule",
		map[string]any{"token": hourToken, "preferred_dates": "weekend mornings"}, "")
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	s.Equal(1, dbtest.CountRows(s.T(), s.DB,
		"SELECT count(*) FROM service_requests WHERE id = $1 AND status = 'reschedule_requested' AND preferred_dates = 'weekend mornings'", requestID))
	_, ok := s.Notifier.Last(shared.NotifyRescheduleRequested)
	s.True(ok)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/cancel", map[string]any{"token": hourToken}, "")
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM service_requests WHERE id = $1 AND status = 'cancelled'", requestID))
	_, ok = s.Notifier.Last(shared.NotifyRequestCancelled)
	s.True(ok)

	rec = s.selectTime(requestID, hourToken, "Tue 3pm")
	s.Equal(http.StatusConflict, rec.Code, rec.Body.String())
	s.Empty(s.Payments.Charges())
}

func (s *BookingE2ETestSuite) TestAbandonReleasesSlot() {
	_, requestID, hourToken := s.intake("Tue 3pm")

	rec := s.selectTime(requestID, hourToken, "Tue 3pm")
	var session resdto.CheckoutSessionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &session)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/checkout/"+session.CheckoutToken+"/abandon", nil, "")
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.selectTime(requestID, hourToken, "Tue 3pm")
	s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *BookingE2ETestSuite) TestRefund() {
	ref, requestID, hourToken := s.intake("Tue 3pm")
	rec := s.selectTime(requestID, hourToken, "Tue 3pm")
	var session resdto.CheckoutSessionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &session)
	s.Require().Equal(http.StatusOK, s.deliverPayment(requestID, session.CheckoutToken, "pi_e2e_refund").Code)
	bookingID := s.bookingIDFor(requestID)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/salon/bookings/"+bookingID.String()+"/refund",
		map[string]any{"reason": "stylist unavailable"}, s.JWT.SalonToken(s.T(), ref.SalonID))

	var refund resdto.RefundResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &refund)
	s.NotEmpty(refund.RefundRef)
	s.Require().Len(s.Payments.Refunds(), 1)
	s.Equal("pi_e2e_refund", s.Payments.Refunds()[0].TransactionRef)
	s.Equal(1, dbtest.CountRows(s.T(), s.DB,
		"SELECT count(*) FROM bookings WHERE id = $1 AND booking_status = 'refunded' AND refund_reason = 'stylist unavailable'", bookingID))
	s.Equal(1, dbtest.CountRows(s.T(), s.DB,
		"SELECT count(*) FROM slot_reservations WHERE request_id = $1 AND is_available", requestID))

	// another salon cannot refund
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/salon/bookings/"+bookingID.String()+"/refund",
		map[string]any{"reason": "again"}, s.JWT.SalonToken(s.T(), uuid.New()))
	s.Equal(http.StatusForbidden, rec.Code)
}
