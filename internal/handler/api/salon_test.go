//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-broker/internal/domain/booking"
	"salon-broker/internal/handler/api"
	"salon-broker/internal/handler/middleware"
	resdto "salon-broker/internal/handler/dto/response"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/commands"
	"salon-broker/internal/usecase/queries"
	"salon-broker/internal/usecase/shared"
	"salon-broker/tests/common/httptest"
	"salon-broker/tests/common/testutil"
	commandsmock "salon-broker/tests/mock/commands"
	queriesmock "salon-broker/tests/mock/queries"
	usecasemock "salon-broker/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	salonToken    = "salon-token"
	referrerToken = "referrer-token"
)

type SalonHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockResolver     *usecasemock.MockPrincipalResolver
	mockReservations *commandsmock.MockReservationCommands
	mockBookings     *commandsmock.MockBookingCommands
	mockSettlement   *commandsmock.MockSettlementCommands
	mockViews        *queriesmock.MockBookingQueries
	salon            shared.Principal
}

func (s *SalonHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockResolver = usecasemock.NewMockPrincipalResolver(s.mockCtrl)
	s.mockReservations = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockSettlement = commandsmock.NewMockSettlementCommands(s.mockCtrl)
	s.mockViews = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.salon = shared.Principal{Kind: shared.PrincipalSalon, AccountID: uuid.New()}

	s.mockResolver.EXPECT().ResolvePrincipal(gomock.Any(), salonToken).Return(s.salon, nil).AnyTimes()
	s.mockResolver.EXPECT().ResolvePrincipal(gomock.Any(), referrerToken).
		Return(shared.Principal{Kind: shared.PrincipalReferrer, AccountID: uuid.New()}, nil).AnyTimes()
	s.mockResolver.EXPECT().ResolvePrincipal(gomock.Any(), gomock.Any()).
		Return(shared.Principal{}, errs.ErrUnauthenticated).AnyTimes()

	auth := middleware.NewAuthMiddleware(s.mockResolver)
	h := api.NewSalonHandler(s.mockReservations, s.mockBookings, s.mockSettlement, s.mockViews)

	salon := s.router.Group("/salon", auth.RequirePrincipal(shared.PrincipalSalon))
	salon.POST("/requests/:id/respond", h.Respond)
	salon.GET("/bookings/:id", h.GetBooking)
	salon.POST("/bookings/:id/confirm", h.Confirm)
	salon.POST("/bookings/:id/alternatives", h.OfferAlternatives)
	salon.POST("/bookings/:id/refund", h.Refund)
}

func (s *SalonHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSalonHandlerSuite(t *testing.T) {
	suite.Run(t, new(SalonHandlerTestSuite))
}

type testCaseSalon struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *SalonHandlerTestSuite) TestRespond() {
	url := "/salon/requests/42/respond"
	reqBody := map[string]any{"time_options": []string{"Tue 3pm", "Wed 10am"}}
	dh := &commands.DecisionHold{
		RequestID:   42,
		HourToken:   "dec_abc",
		ExpiresAt:   time.Date(2026, 3, 3, 11, 0, 0, 0, time.UTC),
		TimeOptions: []string{"Tue 3pm", "Wed 10am"},
	}

	s.Run("success: returns the decision token", func() {
		s.mockReservations.EXPECT().
			RespondWithTimeOptions(gomock.Any(), s.salon, int64(42), []string{"Tue 3pm", "Wed 10am"}).
			Return(dh, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, salonToken)

		var body resdto.DecisionHoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("dec_abc", body.HourToken)
		s.Equal(dh.TimeOptions, body.TimeOptions)
		s.True(dh.ExpiresAt.Equal(body.ExpiresAt))
	})

	validation := []testCaseSalon{
		{name: "missing time_options", mutate: testutil.Field("time_options", nil), expectCode: http.StatusBadRequest},
		{name: "empty time_options", mutate: testutil.Field("time_options", []string{}), expectCode: http.StatusBadRequest},
		{name: "blank option", mutate: testutil.Field("time_options", []string{""}), expectCode: http.StatusBadRequest},
		{name: "too many options", mutate: testutil.Field("time_options", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}), expectCode: http.StatusBadRequest},
	}
	for _, tc := range validation {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), salonToken)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("error: 400 on malformed request id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/salon/requests/abc/respond", reqBody, salonToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request id")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 401 on unknown token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "garbage")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 403 for a referrer", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, referrerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	usecaseErrors := []struct {
		name string
		err  error
		code int
	}{
		{"another salon's request", errs.ErrForbidden, http.StatusForbidden},
		{"unknown request", errs.ErrServiceRequestNotFound, http.StatusNotFound},
		{"request closed", errs.ErrRequestClosed, http.StatusConflict},
		{"database down", errs.ErrDatabaseOperationFailed, http.StatusServiceUnavailable},
	}
	for _, tc := range usecaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockReservations.EXPECT().RespondWithTimeOptions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, errs.Wrap(tc.err, "respond")).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, salonToken)
			httptest.AssertErrorResponse(s.T(), rec, tc.code, "")
		})
	}
}

func (s *SalonHandlerTestSuite) TestGetBooking() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockViews.EXPECT().GetByID(gomock.Any(), s.salon, id).Return(&queries.BookingView{
			ID:              id,
			RequestID:       42,
			AppointmentTime: "Tue 3pm",
			Status:          string(booking.StatusPendingConfirmation),
			FeeCents:        15000,
			SalonNetCents:   12000,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/salon/bookings/"+id.String(), nil, salonToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("pending_confirmation", body.Status)
		s.Equal(int64(12000), body.SalonNetCents)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/salon/bookings/not-a-uuid", nil, salonToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404", func() {
		s.mockViews.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/salon/bookings/"+id.String(), nil, salonToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *SalonHandlerTestSuite) TestConfirm() {
	id := uuid.New()
	url := "/salon/bookings/" + id.String() + "/confirm"

	s.Run("success: 204", func() {
		s.mockBookings.EXPECT().Confirm(gomock.Any(), s.salon, id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, salonToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already confirmed", func() {
		s.mockBookings.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.ErrInvalidTransition).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, salonToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *SalonHandlerTestSuite) TestOfferAlternatives() {
	id := uuid.New()
	url := "/salon/bookings/" + id.String() + "/alternatives"

	s.Run("success", func() {
		s.mockBookings.EXPECT().OfferAlternatives(gomock.Any(), s.salon, id, []string{"Thu 1pm"}).
			Return(&commands.DecisionHold{RequestID: 42, HourToken: "dec_alt", TimeOptions: []string{"Thu 1pm"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"time_options": []string{"Thu 1pm"}}, salonToken)

		var body resdto.DecisionHoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("dec_alt", body.HourToken)
	})

	s.Run("error: 409 when not pending", func() {
		s.mockBookings.EXPECT().OfferAlternatives(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidTransition).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"time_options": []string{"Thu 1pm"}}, salonToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *SalonHandlerTestSuite) TestRefund() {
	id := uuid.New()
	url := "/salon/bookings/" + id.String() + "/refund"

	s.Run("success", func() {
		s.mockSettlement.EXPECT().OnRefundRequested(gomock.Any(), s.salon, id, "stylist sick").
			Return(&commands.RefundResult{BookingID: id, RefundRef: "re_1"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "stylist sick"}, salonToken)

		var body resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("re_1", body.RefundRef)
		s.Equal(id, body.BookingID)
	})

	s.Run("error: 400 without reason", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, salonToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 on blank reason", func() {
		s.mockSettlement.EXPECT().OnRefundRequested(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrRefundReasonRequired).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "  "}, salonToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 503 when the processor fails", func() {
		s.mockSettlement.EXPECT().OnRefundRequested(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("timeout"), errs.ErrPaymentCapability)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "sick"}, salonToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}
