package httperr

import (
	"net/http"

	"salon-broker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	msg    string
}

// checked in order; the first match wins
var mappings = []mapping{
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "Authentication required"},
	{errs.ErrHoldInvalid, http.StatusUnauthorized, "Invalid or unknown token"},
	{errs.ErrForbidden, http.StatusForbidden, "Not allowed for this account"},
	{errs.ErrReferralCodeNotFound, http.StatusNotFound, "Referral code not found"},
	{errs.ErrServiceRequestNotFound, http.StatusNotFound, "Service request not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrHoldExpired, http.StatusGone, "This link has expired, please ask the salon for new times"},
	{errs.ErrCheckoutInProgress, http.StatusConflict, "A checkout is already open for this request, finish or abandon it first"},
	{errs.ErrSlotTaken, http.StatusConflict, "That time was just taken, please pick again"},
	{errs.ErrRequestClosed, http.StatusConflict, "This request is no longer open"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Booking is not in a state that allows this"},
	{errs.ErrTimeOptionNotOffered, http.StatusUnprocessableEntity, "That time was not offered"},
	{errs.ErrRefundReasonRequired, http.StatusUnprocessableEntity, "A refund reason is required"},
	{errs.ErrInvalidPaymentEvent, http.StatusBadRequest, "Invalid payment event"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrPaymentCapability, http.StatusServiceUnavailable, "Payments are unavailable, try again shortly"},
	{errs.ErrSettlementInterrupted, http.StatusServiceUnavailable, "Try again shortly"},
	{errs.ErrDatabaseOperationFailed, http.StatusServiceUnavailable, "Try again shortly"},
}

// Status maps a usecase error to its HTTP status and public message.
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort maps err and aborts the request with the mapped response.
func Abort(c *gin.Context, err error) {
	status, msg := Status(err)
	AbortWithError(c, status, err, msg, nil)
}
