//go:build unit

package api_test

import (
	"encoding/hex"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"salon-broker/internal/handler/api"
	"salon-broker/internal/infra/payment"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/commands"
	"salon-broker/tests/common/httptest"
	commandsmock "salon-broker/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	webhookSecret = "whsec_test"

	paidCheckout = `{"id":"evt_1","type":"checkout.session.completed","data":{"object":{` +
		`"id":"cs_1","payment_intent":"pi_1","payment_status":"paid","amount_total":15000,` +
		`"metadata":{"request_id":"42","checkout_token":"chk_abc"}}}}`
	unpaidCheckout = `{"id":"evt_2","type":"checkout.session.completed","data":{"object":{` +
		`"id":"cs_2","payment_intent":"pi_2","payment_status":"unpaid","amount_total":15000,"metadata":{}}}}`
	otherEvent      = `{"id":"evt_3","type":"charge.refunded","data":{"object":{}}}`
	missingMetadata = `{"id":"evt_4","type":"checkout.session.completed","data":{"object":{` +
		`"id":"cs_4","payment_intent":"pi_4","payment_status":"paid","amount_total":15000,"metadata":{}}}}`
)

type PaymentWebhookTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockSettlement *commandsmock.MockSettlementCommands
}

func (s *PaymentWebhookTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSettlement = commandsmock.NewMockSettlementCommands(s.mockCtrl)

	h := api.NewPaymentWebhookHandler(s.mockSettlement, webhookSecret, slog.Default())
	s.router.POST("/payments/webhook", h.Handle)
}

func (s *PaymentWebhookTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentWebhookSuite(t *testing.T) {
	suite.Run(t, new(PaymentWebhookTestSuite))
}

func (s *PaymentWebhookTestSuite) post(body, signature string) *nethttptest.ResponseRecorder {
	headers := map[string]string{}
	if signature != "" {
		headers[payment.SignatureHeader] = signature
	}
	return httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/payments/webhook", []byte(body), headers)
}

func sign(body string) string {
	return "sha256=" + hex.EncodeToString(payment.Sign(webhookSecret, []byte(body)))
}

func (s *PaymentWebhookTestSuite) TestHandle() {
	s.Run("success: paid checkout settles", func() {
		s.mockSettlement.EXPECT().OnPaymentCompleted(gomock.Any(), commands.PaymentCompleted{
			TransactionRef:  "pi_1",
			RequestID:       42,
			CheckoutToken:   "chk_abc",
			AmountPaidCents: 15000,
		}).Return(&commands.SettlementResult{Outcome: commands.OutcomeSettled, BookingID: uuid.New()}, nil).Times(1)

		rec := s.post(paidCheckout, sign(paidCheckout))

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("settled", body["outcome"])
	})

	s.Run("success: redelivery acknowledged", func() {
		s.mockSettlement.EXPECT().OnPaymentCompleted(gomock.Any(), gomock.Any()).
			Return(&commands.SettlementResult{Outcome: commands.OutcomeDuplicate}, nil).Times(1)
		rec := s.post(paidCheckout, sign(paidCheckout))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: unpaid checkout ignored", func() {
		rec := s.post(unpaidCheckout, sign(unpaidCheckout))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: unrelated event ignored", func() {
		rec := s.post(otherEvent, sign(otherEvent))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 without signature", func() {
		rec := s.post(paidCheckout, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid signature")
	})

	s.Run("error: 401 on tampered body", func() {
		rec := s.post(otherEvent, sign(paidCheckout))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 on malformed json", func() {
		rec := s.post("{not json", sign("{not json"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Malformed event")
	})

	s.Run("error: 400 when correlation metadata is missing", func() {
		rec := s.post(missingMetadata, sign(missingMetadata))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 503 when settlement was interrupted", func() {
		s.mockSettlement.EXPECT().OnPaymentCompleted(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection reset"), errs.ErrSettlementInterrupted)).Times(1)
		rec := s.post(paidCheckout, sign(paidCheckout))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockSettlement.EXPECT().OnPaymentCompleted(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("boom")).Times(1)
		rec := s.post(paidCheckout, sign(paidCheckout))
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func TestPaymentWebhook_NoSecretSkipsVerification(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	settlement := commandsmock.NewMockSettlementCommands(ctrl)
	settlement.EXPECT().OnPaymentCompleted(gomock.Any(), gomock.Any()).
		Return(&commands.SettlementResult{Outcome: commands.OutcomeSettled}, nil).Times(1)

	router := gin.New()
	router.POST("/payments/webhook", api.NewPaymentWebhookHandler(settlement, "", slog.Default()).Handle)

	w := httptest.PerformRawRequest(t, router, http.MethodPost, "/payments/webhook", []byte(paidCheckout), nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
