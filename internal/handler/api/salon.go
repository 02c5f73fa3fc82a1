package api

import (
	"net/http"

	reqdto "salon-broker/internal/handler/dto/request"
	resdto "salon-broker/internal/handler/dto/response"
	"salon-broker/internal/handler/httperr"
	"salon-broker/internal/usecase/commands"
	"salon-broker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// SalonHandler serves the salon side. Every route sits behind a salon session.
type SalonHandler struct {
	reservations commands.ReservationCommands
	bookings     commands.BookingCommands
	settlement   commands.SettlementCommands
	bookingViews queries.BookingQueries
}

func NewSalonHandler(
	reservations commands.ReservationCommands,
	bookings commands.BookingCommands,
	settlement commands.SettlementCommands,
	bookingViews queries.BookingQueries,
) *SalonHandler {
	return &SalonHandler{
		reservations: reservations,
		bookings:     bookings,
		settlement:   settlement,
		bookingViews: bookingViews,
	}
}

// @Summary Respond with time options
// @Description Offer the client a set of times; issues a decision token
// @Tags salon
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service request ID"
// @Param request body reqdto.TimeOptionsRequest true "Time options"
// @Success 200 {object} resdto.DecisionHoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/salon/requests/{id}/respond [post]
func (h *SalonHandler) Respond(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}
	var req reqdto.TimeOptionsRequest
	if !bindJSON(c, &req) {
		return
	}

	dh, err := h.reservations.RespondWithTimeOptions(c.Request.Context(), p, requestID, req.TimeOptions)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDecisionHold(dh))
}

// @Summary Get booking
// @Tags salon
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/salon/bookings/{id} [get]
func (h *SalonHandler) GetBooking(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.bookingViews.GetByID(c.Request.Context(), p, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Confirm booking
// @Tags salon
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/salon/bookings/{id}/confirm [post]
func (h *SalonHandler) Confirm(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.bookings.Confirm(c.Request.Context(), p, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Offer alternative times
// @Description Release the booked time and let the client pick another without paying again
// @Tags salon
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TimeOptionsRequest true "Alternative times"
// @Success 200 {object} resdto.DecisionHoldResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/salon/bookings/{id}/alternatives [post]
func (h *SalonHandler) OfferAlternatives(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.TimeOptionsRequest
	if !bindJSON(c, &req) {
		return
	}

	dh, err := h.bookings.OfferAlternatives(c.Request.Context(), p, id, req.TimeOptions)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDecisionHold(dh))
}

// @Summary Refund booking
// @Tags salon
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RefundRequest true "Refund reason"
// @Success 200 {object} resdto.RefundResponse
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/salon/bookings/{id}/refund [post]
func (h *SalonHandler) Refund(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.RefundRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.settlement.OnRefundRequested(c.Request.Context(), p, id, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefund(res))
}
