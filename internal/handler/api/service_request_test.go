//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"salon-broker/internal/handler/api"
	reqdto "salon-broker/internal/handler/dto/request"
	resdto "salon-broker/internal/handler/dto/response"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/commands"
	"salon-broker/tests/common/httptest"
	"salon-broker/tests/common/testutil"
	commandsmock "salon-broker/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IntakeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockIntakeCommands
}

func (s *IntakeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockIntakeCommands(s.mockCtrl)

	h := api.NewIntakeHandler(s.mockCommands)
	s.router.POST("/service-requests", h.Create)
}

func (s *IntakeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIntakeHandlerSuite(t *testing.T) {
	suite.Run(t, new(IntakeHandlerTestSuite))
}

type testCaseIntake struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *IntakeHandlerTestSuite) TestCreate() {
	url := "/service-requests"
	reqBody := reqdto.CreateServiceRequestRequest{
		ReferralCode:   " RILEY-BALAYAGE ",
		ClientName:     "Dana",
		ClientEmail:    "dana@example.com",
		ClientPhone:    "+1 555 0100",
		PreferredDates: "weekday afternoons",
	}

	s.Run("success: 201 with location", func() {
		s.mockCommands.EXPECT().CreateServiceRequest(gomock.Any(), commands.CreateServiceRequestInput{
			ReferralCode:   "RILEY-BALAYAGE",
			ClientName:     "Dana",
			ClientEmail:    "dana@example.com",
			ClientPhone:    "+1 555 0100",
			PreferredDates: "weekday afternoons",
		}).Return(int64(42), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(42), body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/service-requests/42"})
	})

	validation := []testCaseIntake{
		{name: "missing referral_code", mutate: testutil.Field("referral_code", nil), expectCode: http.StatusBadRequest},
		{name: "missing client_name", mutate: testutil.Field("client_name", nil), expectCode: http.StatusBadRequest},
		{name: "missing client_email", mutate: testutil.Field("client_email", nil), expectCode: http.StatusBadRequest},
		{name: "invalid email", mutate: testutil.Field("client_email", "dana"), expectCode: http.StatusBadRequest},
		{name: "client_name too long", mutate: testutil.Field("client_name", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		{name: "phone optional", mutate: testutil.Field("client_phone", nil), expectCode: http.StatusCreated},
		{name: "preferred dates optional", mutate: testutil.Field("preferred_dates", nil), expectCode: http.StatusCreated},
	}
	for _, tc := range validation {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusCreated {
				s.mockCommands.EXPECT().CreateServiceRequest(gomock.Any(), gomock.Any()).Return(int64(43), nil).Times(1)
			}
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: 404 on unknown referral code", func() {
		s.mockCommands.EXPECT().CreateServiceRequest(gomock.Any(), gomock.Any()).Return(int64(0), errs.ErrReferralCodeNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Referral code not found")
	})
}
