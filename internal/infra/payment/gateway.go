package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"salon-broker/internal/pkg/clock"
	"salon-broker/internal/pkg/config"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const (
	checkoutSessionsPath = "/v1/checkout/sessions"
	refundsPath          = "/v1/refunds"

	breakerMaxFailures = 5
	breakerCoolDown    = 30 * time.Second
)

// APIError is a non-2xx answer from the payment processor.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payment api error: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
}

// Temporary reports whether retrying later may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

type Gateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
	breaker *Breaker
	logger  *slog.Logger
}

var _ shared.PaymentGateway = (*Gateway)(nil)

func NewGateway(cfg config.PaymentConfig, clk clock.Clock, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: NewBreaker(breakerMaxFailures, breakerCoolDown, clk),
		logger:  logger,
	}
}

type checkoutSessionRequest struct {
	Amount        int64             `json:"amount"`
	DisplayAmount string            `json:"display_amount"`
	Currency      string            `json:"currency"`
	Description   string            `json:"description"`
	SuccessURL    string            `json:"success_url"`
	CancelURL     string            `json:"cancel_url"`
	Metadata      map[string]string `json:"metadata"`
}

type checkoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type refundRequest struct {
	PaymentIntent string            `json:"payment_intent"`
	Amount        int64             `json:"amount"`
	Reason        string            `json:"reason"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type refundResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateCharge opens a hosted checkout session for the fee.
func (g *Gateway) CreateCharge(ctx context.Context, req shared.ChargeRequest) (*shared.Charge, error) {
	if req.AmountCents <= 0 {
		return nil, errs.New("charge amount must be positive")
	}
	body := checkoutSessionRequest{
		Amount:        req.AmountCents,
		DisplayAmount: FormatAmount(req.AmountCents),
		Currency:      strings.ToLower(req.Currency),
		Description:   req.Description,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		Metadata:      req.Metadata,
	}

	var out checkoutSessionResponse
	if err := g.post(ctx, checkoutSessionsPath, "", body, &out); err != nil {
		return nil, errs.Wrap(err, "failed to create checkout session")
	}
	if out.ID == "" || out.URL == "" {
		return nil, errs.New("checkout session response missing id or url")
	}
	return &shared.Charge{ChargeRef: out.ID, CheckoutURL: out.URL}, nil
}

// Refund returns the full captured amount. The idempotency key makes a retried
// call return the original refund.
func (g *Gateway) Refund(ctx context.Context, req shared.RefundRequest) (string, error) {
	body := refundRequest{
		PaymentIntent: req.TransactionRef,
		Amount:        req.AmountCents,
		Reason:        "requested_by_customer",
		Metadata:      map[string]string{"reason": req.Reason},
	}

	var out refundResponse
	if err := g.post(ctx, refundsPath, req.IdempotencyKey, body, &out); err != nil {
		return "", errs.Wrap(err, "failed to create refund")
	}
	if out.ID == "" {
		return "", errs.New("refund response missing id")
	}
	return out.ID, nil
}

func (g *Gateway) post(ctx context.Context, path, idempotencyKey string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errs.Wrap(err, "failed to encode payment request")
	}

	return g.breaker.Execute(func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return errs.Wrap(err, "failed to build payment request")
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
		if idempotencyKey != "" {
			httpReq.Header.Set("Idempotency-Key", idempotencyKey)
		}

		resp, err := g.client.Do(httpReq)
		if err != nil {
			return errs.Wrap(err, "payment request failed")
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return errs.Wrap(err, "failed to read payment response")
		}
		if resp.StatusCode >= http.StatusMultipleChoices {
			apiErr := &APIError{StatusCode: resp.StatusCode}
			var env errorEnvelope
			if json.Unmarshal(raw, &env) == nil {
				apiErr.Code = env.Error.Code
				apiErr.Message = env.Error.Message
			}
			g.logger.Warn("payment api rejected request",
				"path", path, "status", resp.StatusCode, "code", apiErr.Code)
			return apiErr
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return errs.Wrap(err, "failed to decode payment response")
		}
		return nil
	}, countsAsFailure)
}

// countsAsFailure keeps caller mistakes (4xx) from tripping the breaker.
func countsAsFailure(err error) bool {
	var apiErr *APIError
	if errs.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	return true
}

// FormatAmount renders minor units as a fixed two-decimal major amount.
func FormatAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
