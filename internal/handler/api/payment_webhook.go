package api

import (
	"io"
	"log/slog"
	"net/http"

	"salon-broker/internal/handler/httperr"
	"salon-broker/internal/infra/payment"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

type PaymentWebhookHandler struct {
	settlement commands.SettlementCommands
	secret     string
	logger     *slog.Logger
}

// NewPaymentWebhookHandler verifies signatures only when secret is non-empty.
func NewPaymentWebhookHandler(settlement commands.SettlementCommands, secret string, logger *slog.Logger) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{settlement: settlement, secret: secret, logger: logger}
}

type webhookAck struct {
	Received bool   `json:"received"`
	Outcome  string `json:"outcome,omitempty"`
}

// @Summary Payment processor webhook
// @Description Settles completed checkouts. Redeliveries are acknowledged without repeating work.
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} webhookAck
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/payments/webhook [post]
func (h *PaymentWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	if h.secret != "" {
		if err := payment.VerifySignature(h.secret, body, c.GetHeader(payment.SignatureHeader)); err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid signature", nil)
			return
		}
	}

	event, err := payment.ParseEvent(body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed event", nil)
		return
	}
	completed, ok, err := event.PaymentCompleted()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if !ok {
		h.logger.DebugContext(c.Request.Context(), "Ignoring payment event",
			slog.String("event_id", event.ID), slog.String("type", event.Type))
		c.JSON(http.StatusOK, webhookAck{Received: true})
		return
	}

	res, err := h.settlement.OnPaymentCompleted(c.Request.Context(), completed)
	if err != nil {
		if payment.IsPermanent(err) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment event", nil)
			return
		}
		// non-2xx makes the processor redeliver
		h.logger.ErrorContext(c.Request.Context(), "Settlement failed",
			slog.String("event_id", event.ID),
			slog.String("transaction_ref", completed.TransactionRef),
			slog.Any("error", err))
		status, msg := httperr.Status(err)
		if status < http.StatusInternalServerError {
			status = http.StatusServiceUnavailable
		}
		httperr.AbortWithError(c, status, errs.Wrap(err, "settle payment"), msg, nil)
		return
	}

	c.JSON(http.StatusOK, webhookAck{Received: true, Outcome: string(res.Outcome)})
}
